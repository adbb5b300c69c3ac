package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid            = errors.New("invalid parameters")
	ErrDateRangeInvalid        = errors.New("start date must not be after end date")
	ErrPeriodFormat            = errors.New("period must be of the form <N>d")
	ErrUserNotFound            = errors.New("user not found")
	ErrUserPhoneNotFound       = errors.New("phone number not registered")
	ErrUserExist               = errors.New("user already exists")
	ErrUserPhoneExist          = errors.New("phone number already registered")
	ErrUserUsernameExist       = errors.New("username already taken")
	ErrUserBan                 = errors.New("user is banned")
	ErrPasswordIncorrect       = errors.New("incorrect password")
	ErrCodeIncorrect           = errors.New("incorrect verification code")
	ErrMissingLoginCredentials = errors.New("missing login credentials")
	ErrSmsRegTokenIncorrect    = errors.New("invalid phone verification token")
	ErrConnectionSelf          = errors.New("cannot connect to yourself")
	ErrConnectionExists        = errors.New("connection already exists")
	ErrConnectionNotFound      = errors.New("connection does not exist")
	ErrInviteNotFound          = errors.New("invite not found")
	ErrInviteURLExists         = errors.New("invite url already exists")
	UnauthorizedError          = errors.New("insufficient permissions")
	UnExpectedError            = errors.New("unexpected error, please retry later")
)

// TrackInviteFailedMsg is the stable wrapper message for click-tracking
// failures so callers can tell them apart from arbitrary store errors.
const TrackInviteFailedMsg = "invite click tracking failed"

var ErrorMap = map[error]int{
	ErrParamInvalid:            BadRequest,
	ErrDateRangeInvalid:        BadRequest,
	ErrPeriodFormat:            BadRequest,
	ErrUserNotFound:            NotFound,
	ErrUserPhoneNotFound:       NotFound,
	ErrUserExist:               BadRequest,
	ErrUserPhoneExist:          BadRequest,
	ErrUserUsernameExist:       BadRequest,
	ErrUserBan:                 Unauthorized,
	ErrPasswordIncorrect:       Unauthorized,
	ErrCodeIncorrect:           Unauthorized,
	ErrMissingLoginCredentials: Unauthorized,
	ErrSmsRegTokenIncorrect:    Unauthorized,
	ErrConnectionSelf:          BadRequest,
	ErrConnectionExists:        Conflict,
	ErrConnectionNotFound:      NotFound,
	ErrInviteNotFound:          NotFound,
	ErrInviteURLExists:         Conflict,
	UnauthorizedError:          Unauthorized,
	UnExpectedError:            InternalServerError,
}
