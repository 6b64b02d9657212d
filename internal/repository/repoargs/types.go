package repoargs

type RepositoryName string

const (
	AccountRepoName      RepositoryName = "account"
	CustomerRepoName     RepositoryName = "customer"
	StoreRepoName        RepositoryName = "store"
	PurchaseRepoName     RepositoryName = "purchase"
	MovementRepoName     RepositoryName = "movement"
	OperationRepoName    RepositoryName = "operation"
	StorePaymentRepoName RepositoryName = "store_payment"
	FundingRepoName      RepositoryName = "funding"
	RateRepoName         RepositoryName = "rate"
)
