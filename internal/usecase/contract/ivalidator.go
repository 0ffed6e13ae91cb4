package usecasecontract

// IValidator validates entity structs before persistence.
type IValidator interface {
	Struct(s interface{}) error
}
