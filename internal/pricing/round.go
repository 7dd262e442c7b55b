package pricing

import "github.com/shopspring/decimal"

var five = decimal.NewFromInt(5)

// RoundDown rounds value half-up to places decimal places, then down to the
// nearest multiple of five in the final place. With places=2 this is the
// nickel rule for dollar amounts: 1.23 -> 1.20, 1.27 -> 1.25, 1.25 -> 1.25.
func RoundDown(value decimal.Decimal, places int32) decimal.Decimal {
	units := value.Round(places).Shift(places)
	return units.Sub(units.Mod(five)).Shift(-places)
}

// RoundDownToNickel applies RoundDown at two decimal places. It is used for
// the final 3D-printing cost and nowhere else.
func RoundDownToNickel(value decimal.Decimal) decimal.Decimal {
	return RoundDown(value, 2)
}
