package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// FundAccount административный счет компании в одной из двух валют.
// Баланс не может быть отрицательным, меняется только сервисами операций.
// Счета никогда не удаляются физически.
type FundAccount struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Currency  Currency
	Balance   decimal.Decimal
}

// Customer клиент с балансом, за счет которого оплачиваются подарки.
type Customer struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Balance   decimal.Decimal
}

// Store магазин-партнер. CommissionPercentage - доля, удерживаемая платформой
// с каждой доставленной покупки (0.20 = 20%).
type Store struct {
	ID                   int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	Name                 string
	CommissionPercentage decimal.Decimal
}

// Purchase покупка-подарок. Привязывается к выплате магазину (StorePaymentID)
// после того как магазин получил расчет за нее.
type Purchase struct {
	ID                   int64
	CreatedAt            time.Time
	UpdatedAt            time.Time
	CustomerID           int64
	StoreID              int64
	GiftRecipientID      *int64
	Amount               decimal.Decimal
	CommissionPercentage decimal.Decimal
	Status               PurchaseStatus
	GiftExpiresAt        time.Time
	StorePaymentID       *int64
}

// CommissionAmount сумма комиссии платформы с данной покупки.
func (p *Purchase) CommissionAmount() decimal.Decimal {
	return RoundMoney(p.Amount.Mul(p.CommissionPercentage))
}

// GiftExpired сообщает, истек ли срок принятия подарка. Истекает только
// подарок, который получатель так и не принял: после принятия срок больше
// не действует.
func (p *Purchase) GiftExpired(now time.Time) bool {
	if p.GiftRecipientID == nil {
		return false
	}
	if p.Status != PurchaseStatusPending {
		return false
	}
	return now.After(p.GiftExpiresAt)
}

// FundOperation административная операция с деньгами: депозит (только
// destination), вывод (только origin, отрицательная сумма) или обмен валюты
// между двумя счетами. Счета подгружаются вместе с операцией, так как
// производные суммы зависят от их валют.
type FundOperation struct {
	ID                 int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Amount             decimal.Decimal
	OriginAccount      *FundAccount
	DestinationAccount *FundAccount
	Rate               decimal.Decimal
	Commission         decimal.Decimal
}

func (o *FundOperation) HasOrigin() bool      { return o.OriginAccount != nil }
func (o *FundOperation) HasDestination() bool { return o.DestinationAccount != nil }

// IsExchange операция является обменом, если заданы оба счета.
func (o *FundOperation) IsExchange() bool {
	return o.HasOrigin() && o.HasDestination()
}

// relevantCurrency валюта, в которой выражена сумма операции: валюта счета
// списания, а при депозите - счета зачисления.
func (o *FundOperation) relevantCurrency() Currency {
	if o.HasOrigin() {
		return o.OriginAccount.Currency
	}
	return o.DestinationAccount.Currency
}

// AmountLocal сумма операции в локальной валюте. Если сумма уже выражена в
// VES - возвращается как есть, иначе конвертируется по курсу операции.
func (o *FundOperation) AmountLocal() decimal.Decimal {
	if o.relevantCurrency() == CurrencyVES {
		return o.Amount
	}
	return RoundMoney(o.Amount.Mul(o.Rate))
}

// AmountUSD сумма операции в долларах, зеркально AmountLocal.
func (o *FundOperation) AmountUSD() decimal.Decimal {
	if o.relevantCurrency() == CurrencyUSD {
		return o.Amount
	}
	return RoundMoney(o.Amount.Div(o.Rate))
}

// Movement неизменяемая запись журнала об одном денежном событии.
// GroupingID объединяет записи, порожденные одной бизнес-транзакцией.
// Запись ссылается ровно на одну сущность-причину.
type Movement struct {
	ID             int64
	CreatedAt      time.Time
	Type           MovementType
	GroupingID     int64
	PurchaseID     *int64
	FundingID      *int64
	OperationID    *int64
	StorePaymentID *int64
}

// validMovementRefs фиксированная матрица: какие типы записей допустимы для
// каждого вида ссылки.
var validMovementRefs = map[MovementType][]string{
	MovementGiftSent:        {"purchase"},
	MovementGiftReceived:    {"purchase"},
	MovementGiftAccepted:    {"purchase"},
	MovementGiftRejected:    {"purchase"},
	MovementGiftRefunded:    {"purchase"},
	MovementGiftExpired:     {"purchase"},
	MovementGiftClaimed:     {"purchase"},
	MovementBarClaimPayment: {"purchase"},
	MovementFunding:         {"funding"},
	MovementAdminFunding:    {"funding", "operation"},
	MovementAdminBarPayment: {"store_payment"},
	MovementAdminWithdrawal: {"operation"},
	MovementExchangeOrigin:  {"operation"},
	MovementExchangeDest:    {"operation"},
}

// refKind определяет вид заполненной ссылки. Пустая строка - ссылок нет,
// "multiple" - заполнено больше одной.
func (m *Movement) refKind() string {
	var kind string
	set := 0
	if m.PurchaseID != nil {
		kind = "purchase"
		set++
	}
	if m.FundingID != nil {
		kind = "funding"
		set++
	}
	if m.OperationID != nil {
		kind = "operation"
		set++
	}
	if m.StorePaymentID != nil {
		kind = "store_payment"
		set++
	}
	if set > 1 {
		return "multiple"
	}
	return kind
}

// Validate проверяет инварианты записи журнала: заполнена ровно одна ссылка
// и ее вид допустим для типа записи.
func (m *Movement) Validate() error {
	kind := m.refKind()
	if kind == "" {
		return NewValidationError("reference", fmt.Sprintf("movement of type %s has no reference", m.Type))
	}
	if kind == "multiple" {
		return NewValidationError("reference", fmt.Sprintf("movement of type %s has more than one reference", m.Type))
	}
	allowed, ok := validMovementRefs[m.Type]
	if !ok {
		return NewValidationError("movement_type", fmt.Sprintf("unknown movement type %s", m.Type))
	}
	for _, a := range allowed {
		if a == kind {
			return nil
		}
	}
	return NewValidationError(
		"movement_type",
		fmt.Sprintf("movement of type %s cannot reference a %s", m.Type, kind),
	)
}

// StorePayment выплата магазину его текущего неоплаченного остатка.
// Reference - человекочитаемый последовательный номер выплаты.
type StorePayment struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StoreID         int64
	Amount          decimal.Decimal
	Reference       int64
	OriginAccountID int64
	Rate            decimal.Decimal
}

// ReferenceNumber номер выплаты в отображаемом формате с ведущими нулями.
func (p *StorePayment) ReferenceNumber() string {
	return fmt.Sprintf("%06d", p.Reference)
}

// AmountLocal сумма выплаты в локальной валюте по курсу на момент выплаты.
func (p *StorePayment) AmountLocal() decimal.Decimal {
	return RoundMoney(p.Amount.Mul(p.Rate))
}

// Funding пополнение баланса клиента через платежный шлюз. Reference
// уникален - это защита от повторной обработки одного вебхука.
type Funding struct {
	ID         int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CustomerID int64
	Amount     decimal.Decimal
	Platform   FundingPlatform
	Status     FundingStatus
	Reference  string
	Fee        decimal.Decimal
	Error      *string
	Rate       *decimal.Decimal
}

// TotalAmount сумма пополнения вместе с комиссией шлюза.
func (f *Funding) TotalAmount() decimal.Decimal {
	return f.Amount.Add(f.Fee)
}

// AmountLocal сумма пополнения в локальной валюте, если курс был зафиксирован.
func (f *Funding) AmountLocal() (decimal.Decimal, bool) {
	if f.Rate == nil {
		return decimal.Decimal{}, false
	}
	return RoundMoney(f.Amount.Mul(*f.Rate)), true
}

// SystemRate операторская запись текущего курса USD→VES. При наличии имеет
// приоритет над котировкой внешнего источника.
type SystemRate struct {
	ID        int64
	UpdatedAt time.Time
	Rate      decimal.Decimal
}

// StoreBalance расчетный неоплаченный остаток магазина.
type StoreBalance struct {
	StoreID   int64
	StoreName string
	Balance   decimal.Decimal
}
