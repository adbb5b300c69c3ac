package service

import (
	"Conexus/internal/api/dto"
	"Conexus/internal/model"
	"Conexus/internal/pkg/cache"
	"Conexus/internal/pkg/consts"
	"Conexus/internal/pkg/security"
	"Conexus/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error)
	LoginByPhone(ctx context.Context, phone, code string) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uint64, profileDTO *dto.UpdateProfileDTO) error
}

type UserServiceImpl struct {
	userRepo     repository.UserRepo
	activityRepo repository.UserActivityRepo
	smsService   SmsService
	tokenManager *security.TokenManager
	cache        cache.Cache
}

func NewUserService(
	userRepo repository.UserRepo,
	activityRepo repository.UserActivityRepo,
	smsService SmsService,
	tokenManager *security.TokenManager,
	c cache.Cache,
) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		smsService:   smsService,
		tokenManager: tokenManager,
		cache:        c,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.findUserByLoginCredentials(ctx, &dto.CredentialDTO{
		Username: regDTO.Username,
		Phone:    regDTO.Phone,
	})
	if err != nil {
		return err
	}
	if findUser != nil {
		if regDTO.Username != nil && *regDTO.Username != "" {
			return ErrUserUsernameExist
		}
		return ErrUserPhoneExist
	}

	user := &model.User{}
	if err = copier.Copy(user, &regDTO); err != nil {
		return err
	}

	// Username registration carries a password.
	if regDTO.Password != nil {
		passwordHash, err := security.HashPassword(*regDTO.Password)
		if err != nil {
			return err
		}
		user.Password = &passwordHash
	}

	// Phone registration carries the token handed out after code verification.
	if regDTO.Phone != nil {
		if regDTO.PhoneToken == nil {
			return ErrSmsRegTokenIncorrect
		}
		key := consts.SmsCheckTokenKey + *regDTO.Phone
		value, err := s.cache.Get(ctx, key)
		if err != nil {
			return err
		}
		if value == "" || value != *regDTO.PhoneToken {
			return ErrSmsRegTokenIncorrect
		}
		_ = s.cache.Delete(ctx, key)
	}

	return s.userRepo.CreateUser(ctx, user)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	user, err := s.findUserByLoginCredentials(ctx, credDTO)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	if user.IsBan {
		return "", ErrUserBan
	}
	if credDTO.Password == nil || user.Password == nil {
		return "", ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(*credDTO.Password, *user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}
	return s.issueToken(ctx, user.ID)
}

func (s *UserServiceImpl) LoginByPhone(ctx context.Context, phone, code string) (string, error) {
	ok, err := s.smsService.VerifyCode(ctx, phone, code)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrCodeIncorrect
	}
	user, err := s.userRepo.GetUserByPhone(ctx, phone)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserPhoneNotFound
	}
	if user.IsBan {
		return "", ErrUserBan
	}
	return s.issueToken(ctx, user.ID)
}

// Logout denylists the token signature until the token itself expires.
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, profileDTO *dto.UpdateProfileDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err = copier.CopyWithOption(user, profileDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}

	today := getMidnight(time.Now())
	if err = s.activityRepo.IncrementActivity(ctx, id, today, repository.ActivityProfileUpdate); err != nil {
		log.WarnContext(ctx, "failed to record profile update activity", "user_id", id, "err", err)
	}
	return nil
}

func (s *UserServiceImpl) issueToken(ctx context.Context, userID uint64) (string, error) {
	token, err := s.tokenManager.GenerateToken(userID)
	if err != nil {
		return "", err
	}

	today := getMidnight(time.Now())
	if err = s.activityRepo.IncrementActivity(ctx, userID, today, repository.ActivityLogin); err != nil {
		log.WarnContext(ctx, "failed to record login activity", "user_id", userID, "err", err)
	}
	return token, nil
}

func (s *UserServiceImpl) findUserByLoginCredentials(ctx context.Context, credDTO *dto.CredentialDTO) (*model.User, error) {
	if credDTO.Username != nil && *credDTO.Username != "" {
		return s.userRepo.GetUserByUsername(ctx, *credDTO.Username)
	}
	if credDTO.Phone != nil && *credDTO.Phone != "" {
		return s.userRepo.GetUserByPhone(ctx, *credDTO.Phone)
	}
	return nil, ErrMissingLoginCredentials
}
