// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/33cn/dice/types"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var coinUnit = decimal.New(1, types.CoinPrecision)

// ParseAmount 把以币为单位的字符串转换成最小单位, 最多 8 位小数
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errors.Wrapf(types.ErrAmount, "parse amount %s", s)
	}
	units := d.Mul(coinUnit)
	if !units.Equal(units.Truncate(0)) {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s has more than %d decimals", s, types.CoinPrecision)
	}
	if units.Sign() < 0 || units.GreaterThan(decimal.New(types.MaxCoin, 0)) {
		return 0, errors.Wrapf(types.ErrAmount, "amount %s out of range", s)
	}
	return units.IntPart(), nil
}

// FormatAmount 最小单位转换成以币为单位的字符串
func FormatAmount(v int64) string {
	return decimal.New(v, 0).Div(coinUnit).StringFixed(4)
}
