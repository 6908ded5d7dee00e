package directory

type CreateUserInput struct {
	Name  string
	Email string
	Phone string
	Role  string // defaults to student
}

// UpdateUserInput replaces every field; an empty role resets to student.
type UpdateUserInput CreateUserInput

type CreateLocationInput struct {
	Name     string
	Building string
	FloorNo  *int
}

type UpdateLocationInput CreateLocationInput
