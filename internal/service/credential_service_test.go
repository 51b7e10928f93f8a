package service

import (
	"io"
	"testing"

	"medicit-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeCredentialRepo struct {
	rows   []*entity.Credential
	nextID int
	err    error
}

func (f *fakeCredentialRepo) Create(db *gorm.DB, credential *entity.Credential) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	credential.ID = f.nextID
	f.rows = append(f.rows, credential)
	return nil
}

func (f *fakeCredentialRepo) FindCurrentByUserID(db *gorm.DB, userID int) (*entity.Credential, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.rows {
		if c.UserID == userID && c.IsCurrent {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCredentialRepo) Update(db *gorm.DB, credential *entity.Credential) error {
	if f.err != nil {
		return f.err
	}
	for i, c := range f.rows {
		if c.ID == credential.ID {
			f.rows[i] = credential
			return nil
		}
	}
	return nil
}

func newCredentialServiceForTest(repo *fakeCredentialRepo) CredentialService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewCredentialService(log, repo)
}

func TestStoreThenVerify(t *testing.T) {
	repo := &fakeCredentialRepo{}
	svc := newCredentialServiceForTest(repo)

	require.NoError(t, svc.Store(nil, 7, "secreto123"))
	require.Len(t, repo.rows, 1)
	assert.True(t, repo.rows[0].IsCurrent)

	assert.True(t, svc.Verify(nil, 7, "secreto123"))
	assert.False(t, svc.Verify(nil, 7, "otro"))
}

func TestStore_NeverPersistsPlaintext(t *testing.T) {
	repo := &fakeCredentialRepo{}
	svc := newCredentialServiceForTest(repo)

	require.NoError(t, svc.Store(nil, 7, "secreto123"))
	require.Len(t, repo.rows, 1)

	hash := repo.rows[0].Hash
	assert.NotEqual(t, "secreto123", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secreto123")))
}

func TestStore_RotatesCurrentRowInPlace(t *testing.T) {
	repo := &fakeCredentialRepo{}
	svc := newCredentialServiceForTest(repo)

	require.NoError(t, svc.Store(nil, 7, "first"))
	require.NoError(t, svc.Store(nil, 7, "second"))

	// Still exactly one row, updated in place.
	require.Len(t, repo.rows, 1)
	assert.False(t, svc.Verify(nil, 7, "first"))
	assert.True(t, svc.Verify(nil, 7, "second"))
}

func TestVerify_FailsClosed(t *testing.T) {
	// No credential row at all.
	svc := newCredentialServiceForTest(&fakeCredentialRepo{})
	assert.False(t, svc.Verify(nil, 7, "whatever"))

	// Store errors report false instead of surfacing.
	svc = newCredentialServiceForTest(&fakeCredentialRepo{err: gorm.ErrInvalidDB})
	assert.False(t, svc.Verify(nil, 7, "whatever"))
}
