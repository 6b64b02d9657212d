package domain

import "github.com/shopspring/decimal"

// giftForfeitureRate доля, удерживаемая с покупателя при отклонении или
// истечении подарка.
var giftForfeitureRate = decimal.NewFromFloat(0.15)

// RoundMoney приводит сумму к денежному виду: 2 знака после запятой,
// округление половины вверх. Применяется на каждой границе конвертации валют.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Convert переводит сумму из валюты from в валюту to по курсу rate
// (курс всегда задается как USD→VES). Для одинаковых валют сумма возвращается
// без изменений и без округления.
func Convert(amount decimal.Decimal, from, to Currency, rate decimal.Decimal) decimal.Decimal {
	if from == to {
		return amount
	}
	if from == CurrencyUSD {
		return RoundMoney(amount.Mul(rate))
	}
	return RoundMoney(amount.Div(rate))
}

// GiftRefundAmount возвращает сумму, возвращаемую покупателю при отклонении
// или истечении подарка: исходная сумма за вычетом удержания.
func GiftRefundAmount(amount decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Sub(amount.Mul(giftForfeitureRate)))
}

// GiftForfeitureAmount удержанная комиссия при возврате подарка.
func GiftForfeitureAmount(amount decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(giftForfeitureRate))
}
