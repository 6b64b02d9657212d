package domain

// Currency типизированный код валюты. Система поддерживает ровно две валюты:
// USD (основная) и VES (локальная). Любая конвертация между ними идет через
// функцию Convert с текущим курсом.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyVES Currency = "VES"
)

// Valid сообщает, входит ли код валюты в закрытый список поддерживаемых.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyVES
}

// MovementType тип записи в журнале движений средств. Список закрытый,
// новые типы добавляются только вместе с правилом в validMovementRefs.
type MovementType string

const (
	MovementGiftSent        MovementType = "GIFT_SENT"
	MovementGiftReceived    MovementType = "GIFT_RECEIVED"
	MovementGiftAccepted    MovementType = "GIFT_ACCEPTED"
	MovementGiftRejected    MovementType = "GIFT_REJECTED"
	MovementGiftRefunded    MovementType = "GIFT_REFUNDED"
	MovementGiftExpired     MovementType = "GIFT_EXPIRED"
	MovementGiftClaimed     MovementType = "GIFT_CLAIMED"
	MovementBarClaimPayment MovementType = "BAR_CLAIM_PAYMENT"
	MovementFunding         MovementType = "FUNDING"
	MovementAdminFunding    MovementType = "ADMIN_FUNDING"
	MovementAdminBarPayment MovementType = "ADMIN_BAR_PAYMENT"
	MovementAdminWithdrawal MovementType = "ADMIN_FUNDS_WITHDRAWAL"
	MovementExchangeOrigin  MovementType = "FUNDS_EXCHANGE_ORIGIN"
	MovementExchangeDest    MovementType = "FUNDS_EXCHANGE_DESTINATION"
)

func (m MovementType) Valid() bool {
	_, ok := validMovementRefs[m]
	return ok
}

// PurchaseStatus статус покупки-подарка.
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusAccepted  PurchaseStatus = "ACCEPTED"
	PurchaseStatusClaimed   PurchaseStatus = "CLAIMED"
	PurchaseStatusDelivered PurchaseStatus = "DELIVERED"
	PurchaseStatusRejected  PurchaseStatus = "REJECTED"
)

// FundingPlatform платежная платформа, через которую клиент пополнил баланс.
type FundingPlatform string

const (
	PlatformStripe    FundingPlatform = "STRIPE"
	PlatformPayPal    FundingPlatform = "PAYPAL"
	PlatformMercantil FundingPlatform = "MERCANTIL_PAGO_MOVIL"
)

// Valid сообщает, поддерживается ли платформа.
func (p FundingPlatform) Valid() bool {
	switch p {
	case PlatformStripe, PlatformPayPal, PlatformMercantil:
		return true
	}
	return false
}

// AccountName возвращает имя административного счета, на который зачисляются
// поступления данной платформы.
func (p FundingPlatform) AccountName() string {
	switch p {
	case PlatformStripe:
		return "stripe"
	case PlatformPayPal:
		return "paypal"
	case PlatformMercantil:
		return "mercantil"
	}
	return ""
}

// FundingStatus итоговый статус пополнения, каким его вернул платежный шлюз.
type FundingStatus string

const (
	FundingStatusSuccessful FundingStatus = "SUCCESSFUL"
	FundingStatusFailed     FundingStatus = "FAILED"
)
