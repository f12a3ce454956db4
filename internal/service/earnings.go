package service

import (
	"math"
	"time"
)

// Commission rates are compiled constants. Cleaners start on the base rate
// and move to the senior rate once they have been employed four calendar
// months.
const (
	baseCommissionRate   = 0.60
	seniorCommissionRate = 0.70
	seniorTenureMonths   = 4
)

// CommissionRate returns the commission rate for a cleaner hired on hireDate,
// evaluated against the current time. A nil hireDate is treated as newly
// hired.
func CommissionRate(hireDate *time.Time) float64 {
	return CommissionRateAt(hireDate, time.Now())
}

// CommissionRateAt returns the commission rate as of now. Tenure is a whole
// calendar-month count, (year delta)*12 + (month delta), ignoring
// day-of-month. Two cleaners hired a day apart can land on opposite sides of
// the tier boundary; that coarse cliff is the published policy and must be
// preserved.
func CommissionRateAt(hireDate *time.Time, now time.Time) float64 {
	if hireDate == nil {
		return baseCommissionRate
	}

	months := (now.Year()-hireDate.Year())*12 + int(now.Month()) - int(hireDate.Month())
	if months >= seniorTenureMonths {
		return seniorCommissionRate
	}
	return baseCommissionRate
}

// CalculateCleanerEarnings computes the cleaner's share of a booking total.
// The service fee is earmarked entirely for the company and excluded from
// the commissionable base. Zero or negative totals yield zero earnings; the
// function never errors.
func CalculateCleanerEarnings(totalAmount, serviceFee float64, hireDate *time.Time) float64 {
	return CleanerEarningsAt(totalAmount, serviceFee, hireDate, time.Now())
}

// CleanerEarningsAt is CalculateCleanerEarnings with an explicit evaluation
// time for the tenure tier.
func CleanerEarningsAt(totalAmount, serviceFee float64, hireDate *time.Time, now time.Time) float64 {
	if totalAmount <= 0 {
		return 0
	}

	subtotal := totalAmount - serviceFee
	if subtotal <= 0 {
		return 0
	}

	return math.Round(subtotal * CommissionRateAt(hireDate, now))
}

// CalculateCompanyEarnings returns the company's share as the complement of
// the cleaner's, so the two always sum to the booking total.
func CalculateCompanyEarnings(totalAmount, cleanerEarnings float64) float64 {
	return totalAmount - cleanerEarnings
}

// EarningsSplit is the payout breakdown for one completed booking,
// recomputed at read time so a future rate-policy change only affects
// future reads.
type EarningsSplit struct {
	TotalAmount     float64
	ServiceFee      float64
	Subtotal        float64
	Rate            float64
	CleanerEarnings float64
	CompanyEarnings float64
}

// SplitEarnings computes the full payout breakdown for a booking total.
func SplitEarnings(totalAmount, serviceFee float64, hireDate *time.Time, now time.Time) EarningsSplit {
	cleaner := CleanerEarningsAt(totalAmount, serviceFee, hireDate, now)
	return EarningsSplit{
		TotalAmount:     totalAmount,
		ServiceFee:      serviceFee,
		Subtotal:        totalAmount - serviceFee,
		Rate:            CommissionRateAt(hireDate, now),
		CleanerEarnings: cleaner,
		CompanyEarnings: CalculateCompanyEarnings(totalAmount, cleaner),
	}
}
