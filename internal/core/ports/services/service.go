package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is used
// throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Project           ProjectSvcFacade
	BankAccount       BankAccountSvcFacade
	AccountingAccount AccountingAccountSvcFacade
	Transaction       TransactionSvcFacade
	Audit             AuditSvcFacade
	Integrity         IntegritySvcFacade
	Signature         SignatureSvcFacade
	User              UserSvcFacade
	Token             TokenSvcFacade
	GoogleOAuth       GoogleOAuthSvcFacade
}
