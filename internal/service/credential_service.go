package service

import (
	"medicit-backend/internal/domain/entity"
	"medicit-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CredentialService is the boundary behind which plaintext secrets live.
// Nothing outside it ever sees or stores a plaintext password.
type CredentialService interface {
	// Verify checks an attempted password against the user's current hash.
	// It fails closed: a missing credential row or a store error both report
	// false rather than surfacing an error to the login path.
	Verify(db *gorm.DB, userID int, attempt string) bool

	// Store hashes the plaintext with bcrypt and writes exactly one
	// credential row: the current one is updated in place, or the first one
	// is inserted. The plaintext is never persisted or logged.
	Store(db *gorm.DB, userID int, plaintext string) error
}

type credentialService struct {
	log            *logrus.Logger
	credentialRepo repository.CredentialRepository
}

func NewCredentialService(log *logrus.Logger, credentialRepo repository.CredentialRepository) CredentialService {
	return &credentialService{
		log:            log,
		credentialRepo: credentialRepo,
	}
}

func (s *credentialService) Verify(db *gorm.DB, userID int, attempt string) bool {
	credential, err := s.credentialRepo.FindCurrentByUserID(db, userID)
	if err != nil {
		s.log.Warnf("Failed to load credential for user %d: %+v", userID, err)
		return false
	}
	if credential == nil {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(credential.Hash), []byte(attempt)) == nil
}

func (s *credentialService) Store(db *gorm.DB, userID int, plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		s.log.Warnf("Failed to hash password for user %d: %+v", userID, err)
		return err
	}

	credential, err := s.credentialRepo.FindCurrentByUserID(db, userID)
	if err != nil {
		return err
	}

	if credential != nil {
		credential.Hash = string(hashed)
		return s.credentialRepo.Update(db, credential)
	}

	return s.credentialRepo.Create(db, &entity.Credential{
		UserID:    userID,
		Hash:      string(hashed),
		IsCurrent: true,
	})
}
