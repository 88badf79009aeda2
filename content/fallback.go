package content

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"ledgersynth/model"
)

var firstNames = []string{
	"Aarav", "Vivaan", "Aditya", "Arjun", "Rohan", "Karan", "Rahul", "Vikram",
	"Ananya", "Diya", "Priya", "Sneha", "Kavya", "Isha", "Meera", "Neha",
}

var lastNames = []string{
	"Sharma", "Verma", "Patel", "Gupta", "Reddy", "Iyer", "Nair", "Singh",
	"Mehta", "Joshi", "Kapoor", "Chopra", "Rao", "Das", "Bose", "Malhotra",
}

var streets = []string{
	"MG Road", "Station Road", "Park Street", "Nehru Nagar", "Gandhi Marg",
	"Link Road", "Residency Road", "Lake View Colony", "Civil Lines", "Market Lane",
}

var emailDomains = []string{"example.com", "mail.test", "inbox.test"}

var descriptions = map[string][]string{
	"Food & Dining":     {"Swiggy Order", "Zomato Order", "Cafe Coffee Day", "Domino's Pizza", "Haldiram's"},
	"Groceries":         {"BigBasket", "DMart", "Reliance Fresh", "More Supermarket", "Blinkit"},
	"Shopping":          {"Amazon.in", "Flipkart", "Myntra", "Ajio", "Shoppers Stop"},
	"Transportation":    {"Uber Ride", "Ola Cabs", "Rapido", "Metro Card Recharge", "IRCTC Ticket"},
	"Fuel":              {"Indian Oil Petrol Pump", "HP Petrol Pump", "Bharat Petroleum", "Shell Fuel Station"},
	"Utilities":         {"Electricity Bill", "Water Bill", "Piped Gas Bill", "Municipal Tax"},
	"Rent":              {"Monthly House Rent", "Rent Payment via NoBroker", "PG Rent"},
	"Entertainment":     {"BookMyShow", "PVR Cinemas", "Netflix", "Spotify Premium", "INOX Movies"},
	"Healthcare":        {"Apollo Pharmacy", "Practo Consultation", "1mg Medicines", "Max Hospital"},
	"Insurance":         {"LIC Premium", "HDFC Ergo Health Insurance", "ICICI Lombard Motor Insurance"},
	"Education":         {"Byju's Subscription", "Unacademy Plus", "School Fee Payment", "Coursera Course"},
	"Travel":            {"MakeMyTrip Booking", "IndiGo Airlines", "Goibibo Hotel", "Air India Ticket"},
	"Personal Care":     {"Nykaa", "Lakme Salon", "Urban Company Services"},
	"Gifts & Donations": {"Donation to CRY", "GiveIndia Donation", "Gift Purchase"},
	"Investments":       {"Zerodha SIP", "Groww Mutual Fund", "PPF Deposit", "Fixed Deposit"},
	"Salary":            {"Salary Credit", "Monthly Salary", "Salary Bonus"},
	"Freelance":         {"Upwork Payment", "Freelance Project Payment", "Consulting Fee"},
	"Refund":            {"Amazon Refund", "Flipkart Refund", "IRCTC Ticket Refund"},
	"Interest":          {"Savings Interest Credit", "FD Interest Credit"},
	"Dividends":         {"Dividend Credit", "Mutual Fund Dividend"},
	"Transfer":          {"UPI Transfer", "NEFT Transfer", "IMPS Transfer", "RTGS Transfer"},
	"ATM Withdrawal":    {"ATM Cash Withdrawal", "Cash Withdrawal - Branch"},
	"Bills & EMI":       {"Home Loan EMI", "Car Loan EMI", "Credit Card Bill Payment"},
	"Subscriptions":     {"Amazon Prime", "Disney+ Hotstar", "YouTube Premium", "Sony LIV"},
	"Mobile Recharge":   {"Jio Recharge", "Airtel Recharge", "Vi Recharge"},
	"Internet":          {"ACT Fibernet", "Airtel Xstream Fiber", "JioFiber Bill"},
	"Electronics":       {"Croma", "Reliance Digital", "Vijay Sales"},
	"Home Improvement":  {"Pepperfry", "Urban Ladder", "IKEA India", "Asian Paints"},
	"Taxes":             {"Income Tax Payment", "GST Payment", "Property Tax"},
	"Miscellaneous":     {"POS Purchase", "Online Payment", "Service Charge"},
}

var defaultDescriptions = []string{"Payment", "Transaction"}

// Fallback is the deterministic, table-driven provider. Every value it returns
// is drawn from the fixed tables in this file.
type Fallback struct{}

func NewFallback() *Fallback {
	return &Fallback{}
}

func (f *Fallback) Name() string { return "fallback" }

func (f *Fallback) Paced() bool { return false }

func (f *Fallback) Identity(ctx context.Context) model.Identity {
	first := model.Pick(firstNames)
	last := model.Pick(lastNames)
	city := model.Pick(model.Cities)

	return model.Identity{
		Name:  first + " " + last,
		Email: fmt.Sprintf("%s.%s%d@%s", strings.ToLower(first), strings.ToLower(last), rand.IntN(100), model.Pick(emailDomains)),
		Phone: fmt.Sprintf("+91 %d%09d", 6+rand.IntN(4), rand.IntN(1_000_000_000)),
		Address: model.Address{
			Street:  fmt.Sprintf("%d, %s", 1+rand.IntN(999), model.Pick(streets)),
			City:    city.Name,
			State:   city.State,
			Pincode: fmt.Sprintf("%d%05d", 1+rand.IntN(8), rand.IntN(100_000)),
			Country: "India",
		},
	}
}

func (f *Fallback) Description(ctx context.Context, category string, typ model.TransactionType) string {
	return model.Pick(DescriptionsFor(category))
}

// DescriptionsFor returns the fallback table used for category.
func DescriptionsFor(category string) []string {
	if d, ok := descriptions[category]; ok {
		return d
	}
	return defaultDescriptions
}
