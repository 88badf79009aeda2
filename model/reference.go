package model

import "math/rand/v2"

// Bank is an entry of the bank reference table.
type Bank struct {
	Name       string
	Code       string
	IFSCPrefix string
}

// City is an entry of the branch city reference table.
type City struct {
	Name  string
	State string
	Code  string
}

var Banks = []Bank{
	{Name: "State Bank of India", Code: "SBI", IFSCPrefix: "SBIN"},
	{Name: "HDFC Bank", Code: "HDFC", IFSCPrefix: "HDFC"},
	{Name: "ICICI Bank", Code: "ICICI", IFSCPrefix: "ICIC"},
	{Name: "Axis Bank", Code: "AXIS", IFSCPrefix: "UTIB"},
	{Name: "Kotak Mahindra Bank", Code: "KOTAK", IFSCPrefix: "KKBK"},
	{Name: "Punjab National Bank", Code: "PNB", IFSCPrefix: "PUNB"},
	{Name: "Bank of Baroda", Code: "BOB", IFSCPrefix: "BARB"},
	{Name: "Canara Bank", Code: "CANARA", IFSCPrefix: "CNRB"},
}

var Cities = []City{
	{Name: "Mumbai", State: "Maharashtra", Code: "MUM"},
	{Name: "Delhi", State: "Delhi", Code: "DEL"},
	{Name: "Bangalore", State: "Karnataka", Code: "BLR"},
	{Name: "Chennai", State: "Tamil Nadu", Code: "CHN"},
	{Name: "Kolkata", State: "West Bengal", Code: "KOL"},
	{Name: "Hyderabad", State: "Telangana", Code: "HYD"},
	{Name: "Pune", State: "Maharashtra", Code: "PUN"},
	{Name: "Ahmedabad", State: "Gujarat", Code: "AMD"},
	{Name: "Jaipur", State: "Rajasthan", Code: "JAI"},
	{Name: "Lucknow", State: "Uttar Pradesh", Code: "LKO"},
}

// Categories is the closed set of transaction categories.
var Categories = []string{
	"Food & Dining",
	"Groceries",
	"Shopping",
	"Transportation",
	"Fuel",
	"Utilities",
	"Rent",
	"Entertainment",
	"Healthcare",
	"Insurance",
	"Education",
	"Travel",
	"Personal Care",
	"Gifts & Donations",
	"Investments",
	"Salary",
	"Freelance",
	"Refund",
	"Interest",
	"Dividends",
	"Transfer",
	"ATM Withdrawal",
	"Bills & EMI",
	"Subscriptions",
	"Mobile Recharge",
	"Internet",
	"Electronics",
	"Home Improvement",
	"Taxes",
	"Miscellaneous",
}

// DefaultCategory is used for created transactions that name no category.
const DefaultCategory = "Miscellaneous"

// Pick returns a uniformly random element of s, which must not be empty.
func Pick[T any](s []T) T {
	return s[rand.IntN(len(s))]
}
