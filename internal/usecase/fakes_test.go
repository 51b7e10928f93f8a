package usecase

import (
	"io"

	"medicit-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// The fakes below ignore the db handle; usecases under test are built with a
// nil *gorm.DB and never touch a real connection.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserRepo struct {
	users map[int]*entity.User
	err   error
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error { return f.err }
func (f *fakeUserRepo) FindAll(db *gorm.DB) ([]entity.User, error) {
	users := make([]entity.User, 0, len(f.users))
	for _, u := range f.users {
		users = append(users, *u)
	}
	return users, f.err
}
func (f *fakeUserRepo) FindByID(db *gorm.DB, id int) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}
func (f *fakeUserRepo) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) Update(db *gorm.DB, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	f.users[user.ID] = user
	return nil
}
func (f *fakeUserRepo) ReplaceSpecialties(db *gorm.DB, user *entity.User, specialties []entity.Specialty) error {
	if f.err != nil {
		return f.err
	}
	user.Specialties = specialties
	return nil
}

type fakeRoleRepo struct {
	roles map[int]*entity.Role
}

func (f *fakeRoleRepo) Create(db *gorm.DB, role *entity.Role) error { return nil }
func (f *fakeRoleRepo) FindAll(db *gorm.DB) ([]entity.Role, error) {
	roles := make([]entity.Role, 0, len(f.roles))
	for _, r := range f.roles {
		roles = append(roles, *r)
	}
	return roles, nil
}
func (f *fakeRoleRepo) FindByID(db *gorm.DB, id int) (*entity.Role, error) {
	return f.roles[id], nil
}
func (f *fakeRoleRepo) FindByName(db *gorm.DB, name string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}
func (f *fakeRoleRepo) Update(db *gorm.DB, role *entity.Role) error { return nil }
func (f *fakeRoleRepo) Delete(db *gorm.DB, id int) error            { return nil }

type fakeStateRepo struct {
	states map[int]*entity.State
}

func (f *fakeStateRepo) Create(db *gorm.DB, state *entity.State) error { return nil }
func (f *fakeStateRepo) FindAll(db *gorm.DB) ([]entity.State, error) {
	states := make([]entity.State, 0, len(f.states))
	for _, s := range f.states {
		states = append(states, *s)
	}
	return states, nil
}
func (f *fakeStateRepo) FindByID(db *gorm.DB, id int) (*entity.State, error) {
	return f.states[id], nil
}
func (f *fakeStateRepo) FindByName(db *gorm.DB, name string) (*entity.State, error) {
	for _, s := range f.states {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeStateRepo) Update(db *gorm.DB, state *entity.State) error { return nil }
func (f *fakeStateRepo) Delete(db *gorm.DB, id int) error              { return nil }

type fakeModuleRepo struct {
	modules map[int]*entity.Module
}

func (f *fakeModuleRepo) Create(db *gorm.DB, module *entity.Module) error { return nil }
func (f *fakeModuleRepo) FindAll(db *gorm.DB) ([]entity.Module, error) {
	modules := make([]entity.Module, 0, len(f.modules))
	for _, m := range f.modules {
		modules = append(modules, *m)
	}
	return modules, nil
}
func (f *fakeModuleRepo) FindByID(db *gorm.DB, id int) (*entity.Module, error) {
	return f.modules[id], nil
}
func (f *fakeModuleRepo) Update(db *gorm.DB, module *entity.Module) error { return nil }
func (f *fakeModuleRepo) Delete(db *gorm.DB, id int) error                { return nil }

type fakePermissionRepo struct {
	rows    []entity.Permission
	created []entity.Permission
	deleted []int
}

func (f *fakePermissionRepo) Create(db *gorm.DB, permission *entity.Permission) error {
	f.created = append(f.created, *permission)
	return nil
}
func (f *fakePermissionRepo) FindByID(db *gorm.DB, id int) (*entity.Permission, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}
func (f *fakePermissionRepo) FindByRoleID(db *gorm.DB, roleID int) ([]entity.Permission, error) {
	var rows []entity.Permission
	for _, p := range f.rows {
		if p.RoleID == roleID {
			rows = append(rows, p)
		}
	}
	return rows, nil
}
func (f *fakePermissionRepo) FindByRoleAndModule(db *gorm.DB, roleID, moduleID int) ([]entity.Permission, error) {
	var rows []entity.Permission
	for _, p := range f.rows {
		if p.RoleID == roleID && p.ModuleID == moduleID {
			rows = append(rows, p)
		}
	}
	return rows, nil
}
func (f *fakePermissionRepo) FindModuleIDsByRole(db *gorm.DB, roleID int) ([]int, error) {
	seen := make(map[int]bool)
	var ids []int
	for _, p := range f.rows {
		if p.RoleID == roleID && !seen[p.ModuleID] {
			seen[p.ModuleID] = true
			ids = append(ids, p.ModuleID)
		}
	}
	return ids, nil
}
func (f *fakePermissionRepo) Delete(db *gorm.DB, id int) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeSpecialtyRepo struct {
	specialties map[int]*entity.Specialty
}

func (f *fakeSpecialtyRepo) Create(db *gorm.DB, specialty *entity.Specialty) error { return nil }
func (f *fakeSpecialtyRepo) FindAll(db *gorm.DB) ([]entity.Specialty, error) {
	specialties := make([]entity.Specialty, 0, len(f.specialties))
	for _, s := range f.specialties {
		specialties = append(specialties, *s)
	}
	return specialties, nil
}
func (f *fakeSpecialtyRepo) FindByID(db *gorm.DB, id int) (*entity.Specialty, error) {
	return f.specialties[id], nil
}
func (f *fakeSpecialtyRepo) FindByIDs(db *gorm.DB, ids []int) ([]entity.Specialty, error) {
	var found []entity.Specialty
	for _, id := range ids {
		if s, ok := f.specialties[id]; ok {
			found = append(found, *s)
		}
	}
	return found, nil
}
func (f *fakeSpecialtyRepo) Update(db *gorm.DB, specialty *entity.Specialty) error { return nil }
func (f *fakeSpecialtyRepo) Delete(db *gorm.DB, id int) error                      { return nil }

type fakeEmailRepo struct{}

func (f *fakeEmailRepo) Create(db *gorm.DB, email *entity.Email) error { return nil }

type fakePhoneRepo struct{}

func (f *fakePhoneRepo) Create(db *gorm.DB, phone *entity.Phone) error { return nil }

type fakeMedicalRecordRepo struct {
	records map[int]*entity.MedicalRecord
	nextID  int
}

func (f *fakeMedicalRecordRepo) Create(db *gorm.DB, record *entity.MedicalRecord) error {
	if f.records == nil {
		f.records = make(map[int]*entity.MedicalRecord)
	}
	f.nextID++
	record.ID = f.nextID
	f.records[record.ID] = record
	return nil
}
func (f *fakeMedicalRecordRepo) FindAll(db *gorm.DB) ([]entity.MedicalRecord, error) {
	records := make([]entity.MedicalRecord, 0, len(f.records))
	for _, r := range f.records {
		records = append(records, *r)
	}
	return records, nil
}
func (f *fakeMedicalRecordRepo) FindByID(db *gorm.DB, id int) (*entity.MedicalRecord, error) {
	return f.records[id], nil
}
func (f *fakeMedicalRecordRepo) FindByUserID(db *gorm.DB, userID int) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	for _, r := range f.records {
		if r.UserID == userID {
			records = append(records, *r)
		}
	}
	return records, nil
}
func (f *fakeMedicalRecordRepo) Update(db *gorm.DB, record *entity.MedicalRecord) error {
	f.records[record.ID] = record
	return nil
}
func (f *fakeMedicalRecordRepo) Delete(db *gorm.DB, id int) error {
	delete(f.records, id)
	return nil
}

type fakeCredentialService struct {
	verifyResult bool
	stored       map[int]string
	storeErr     error
}

func (f *fakeCredentialService) Verify(db *gorm.DB, userID int, attempt string) bool {
	return f.verifyResult
}
func (f *fakeCredentialService) Store(db *gorm.DB, userID int, plaintext string) error {
	if f.storeErr != nil {
		return f.storeErr
	}
	if f.stored == nil {
		f.stored = make(map[int]string)
	}
	f.stored[userID] = plaintext
	return nil
}
