package usecase

import (
	"context"
	"testing"

	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMedicalRecordUsecaseForTest(recordRepo *fakeMedicalRecordRepo, userRepo *fakeUserRepo) MedicalRecordUsecase {
	if userRepo == nil {
		userRepo = &fakeUserRepo{users: map[int]*entity.User{
			7: {ID: 7, Username: "jlopez"},
		}}
	}
	return NewMedicalRecordUsecase(nil, testLogger(), recordRepo, userRepo)
}

func TestMedicalRecordCreate_RequiresExistingUser(t *testing.T) {
	recordRepo := &fakeMedicalRecordRepo{}
	uc := newMedicalRecordUsecaseForTest(recordRepo, nil)

	_, err := uc.Create(context.Background(), &dto.CreateMedicalRecordRequest{UserID: 99, Text: "Alergia a penicilina"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, recordRepo.records)

	record, err := uc.Create(context.Background(), &dto.CreateMedicalRecordRequest{UserID: 7, Text: "Alergia a penicilina"})
	require.NoError(t, err)
	assert.Equal(t, 7, record.UserID)
	assert.Equal(t, "Alergia a penicilina", record.Text)
}

func TestMedicalRecordGetByUser_FiltersByOwner(t *testing.T) {
	recordRepo := &fakeMedicalRecordRepo{records: map[int]*entity.MedicalRecord{
		1: {ID: 1, UserID: 7, Text: "Hipertension"},
		2: {ID: 2, UserID: 8, Text: "Diabetes tipo 2"},
		3: {ID: 3, UserID: 7, Text: "Alergia a penicilina"},
	}}
	userRepo := &fakeUserRepo{users: map[int]*entity.User{
		7: {ID: 7}, 8: {ID: 8},
	}}
	uc := newMedicalRecordUsecaseForTest(recordRepo, userRepo)

	records, err := uc.GetByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, 7, r.UserID)
	}

	_, err = uc.GetByUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMedicalRecordUpdate(t *testing.T) {
	recordRepo := &fakeMedicalRecordRepo{records: map[int]*entity.MedicalRecord{
		1: {ID: 1, UserID: 7, Text: "Hipertension"},
	}, nextID: 1}
	uc := newMedicalRecordUsecaseForTest(recordRepo, nil)

	text := "Hipertension controlada"
	record, err := uc.Update(context.Background(), 1, &dto.UpdateMedicalRecordRequest{Text: &text})
	require.NoError(t, err)
	assert.Equal(t, text, record.Text)
	assert.Equal(t, 7, record.UserID)

	_, err = uc.Update(context.Background(), 99, &dto.UpdateMedicalRecordRequest{Text: &text})
	assert.ErrorIs(t, err, ErrMedicalRecordNotFound)

	badUser := 99
	_, err = uc.Update(context.Background(), 1, &dto.UpdateMedicalRecordRequest{UserID: &badUser})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMedicalRecordDelete_NotFound(t *testing.T) {
	recordRepo := &fakeMedicalRecordRepo{records: map[int]*entity.MedicalRecord{
		1: {ID: 1, UserID: 7, Text: "Hipertension"},
	}}
	uc := newMedicalRecordUsecaseForTest(recordRepo, nil)

	err := uc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMedicalRecordNotFound)

	require.NoError(t, uc.Delete(context.Background(), 1))
	assert.Empty(t, recordRepo.records)
}
