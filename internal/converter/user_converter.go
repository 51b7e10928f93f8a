package converter

import (
	"medicit-backend/internal/delivery/dto"
	"medicit-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO.
// Role, State, Emails, Phones and Specialties are used when loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		DUI:       user.DUI,
		BirthDate: user.BirthDate.Format("2006-01-02"),
		RoleID:    user.RoleID,
		RoleName:  user.Role.Name,
		StateID:   user.StateID,
		StateName: user.State.Name,
		Email:     user.PrimaryEmail(),
		Phone:     user.PrimaryPhone(),
	}

	for _, s := range user.Specialties {
		response.Specialties = append(response.Specialties, dto.SpecialtyResponse{
			ID:   s.ID,
			Name: s.Name,
		})
	}

	return response
}

// UsersToResponse converts a slice of users.
func UsersToResponse(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *UserToResponse(&users[i]))
	}
	return responses
}
