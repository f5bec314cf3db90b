package service_interfaces

type CredentialGenerator interface {
	GeneratePassword() (string, error)
	GenerateAccountNumber() (string, error)
}
