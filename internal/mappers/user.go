package mappers

import "github.com/sbilibin2017/blog-ms/internal/models"

// MapUser converts a user row into its public view. A nil row maps to nil.
func MapUser(user *models.UserDB) *models.UserDTO {
	if user == nil {
		return nil
	}
	return &models.UserDTO{
		ID:           user.ID,
		Forename:     user.Forename,
		Surname:      user.Surname,
		Organisation: user.Organisation,
		Points:       user.Points,
	}
}

// MapUsers converts user rows; the result is never nil.
func MapUsers(users []models.UserDB) []models.UserDTO {
	dtos := make([]models.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, *MapUser(&users[i]))
	}
	return dtos
}

// MapLoginResponse builds a LoginResponse without a session token.
func MapLoginResponse(user *models.UserDB) *models.LoginResponse {
	if user == nil {
		return nil
	}
	return &models.LoginResponse{
		ID:           user.ID,
		Email:        user.Email,
		Forename:     user.Forename,
		Surname:      user.Surname,
		Organisation: user.Organisation,
		Points:       user.Points,
	}
}
