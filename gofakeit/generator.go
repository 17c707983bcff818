// Package gofakeit generates realistic Australian health insurance
// placeholder data for prototypes.
package gofakeit

import (
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	meshmcp "github.com/lukeylias/MeshMCP"
)

// MaxCount bounds a single generation request.
const MaxCount = 100

// Ensure Generator implements meshmcp.DataGenerator at compile time.
var _ meshmcp.DataGenerator = (*Generator)(nil)

var (
	policyTypes = []string{
		"Hospital Cover", "Extras Cover", "Hospital + Extras",
		"Basic Hospital", "Bronze Hospital", "Silver Hospital", "Gold Hospital",
	}
	policyCategories = []string{"Basic", "Bronze", "Silver", "Gold", "Platinum"}
	claimTypes       = []string{
		"General Treatment", "Major Dental", "Optical", "Physiotherapy",
		"Hospital Accommodation", "Surgery", "Specialist Consultation",
		"Pathology", "Radiology", "Emergency Department",
	}
	claimStatuses = []string{
		"Submitted", "Under Review", "Approved", "Paid", "Rejected",
		"Pending Information", "Processing", "Completed",
	}
	providerTypes = []string{
		"General Practitioner", "Specialist", "Dentist", "Physiotherapist",
		"Optometrist", "Chiropractor", "Psychologist", "Hospital",
		"Pathology Lab", "Radiology Clinic",
	}
	australianStates = []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}
	specialities     = []string{
		"General Practice", "Cardiology", "Dermatology", "Orthopedics",
		"Psychiatry", "Pediatrics", "Gynecology", "Neurology",
	}
	providerServices = []string{
		"Consultations", "Diagnostics", "Minor Surgery", "Vaccinations",
		"Health Checks", "Pathology", "Radiology", "Physiotherapy",
	}
	premiumBases  = []int{89, 119, 159, 199, 249, 299, 359, 449, 599, 799}
	excessAmounts = []int{0, 250, 500, 750, 1000}
)

// Generator produces placeholder records using gofakeit. A zero seed gives a
// randomized generator; a fixed seed gives reproducible output for tests.
type Generator struct {
	faker *gofakeit.Faker
	now   func() time.Time
}

// NewGenerator creates a Generator.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   time.Now,
	}
}

// Generate returns count records of the given type. Count defaults to 10 and
// is capped at MaxCount.
func (g *Generator) Generate(dataType string, count int) ([]map[string]any, error) {
	if count == 0 {
		count = 10
	}
	if count < 1 || count > MaxCount {
		return nil, meshmcp.Errorf(meshmcp.EINVALID, "count must be between 1 and %d, got %d", MaxCount, count)
	}

	var build func() map[string]any
	switch dataType {
	case meshmcp.DataMembers:
		build = g.member
	case meshmcp.DataPolicies:
		build = g.policy
	case meshmcp.DataClaims:
		build = g.claim
	case meshmcp.DataProviders:
		build = g.provider
	default:
		return nil, meshmcp.Errorf(meshmcp.EINVALID, "unsupported data type %q, supported types: %v", dataType, meshmcp.DataTypes())
	}

	records := make([]map[string]any, count)
	for i := range records {
		records[i] = build()
	}
	return records, nil
}

func (g *Generator) member() map[string]any {
	now := g.now()
	joinDate := g.dateBetween(now.AddDate(-5, 0, 0), now)

	return map[string]any{
		"id":              g.faker.Number(100000, 999999),
		"memberNumber":    fmt.Sprintf("MBR%d", g.faker.Number(100000, 999999)),
		"firstName":       g.faker.FirstName(),
		"lastName":        g.faker.LastName(),
		"email":           g.faker.Email(),
		"phone":           g.phone(),
		"dateOfBirth":     g.dateBetween(now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0)).Format(time.DateOnly),
		"address":         g.address(),
		"joinDate":        joinDate.Format(time.DateOnly),
		"status":          g.faker.RandomString([]string{"Active", "Suspended", "Pending", "Cancelled"}),
		"policyType":      g.faker.RandomString(policyTypes),
		"policyCategory":  g.faker.RandomString(policyCategories),
		"monthlyPremium":  g.premium(),
		"excess":          g.faker.RandomInt(excessAmounts),
		"dependents":      g.faker.Number(0, 4),
		"lastPaymentDate": joinDate.AddDate(0, 0, g.faker.Number(0, 365)).Format(time.DateOnly),
		"totalClaimsYTD":  g.money(0, 5000),
		"memberSince":     fmt.Sprintf("%d years", int(now.Sub(joinDate).Hours()/24/365)),
	}
}

func (g *Generator) policy() map[string]any {
	now := g.now()
	startDate := g.dateBetween(now.AddDate(-3, 0, 0), now)
	monthly := g.premium()

	return map[string]any{
		"id":             g.faker.Number(100000, 999999),
		"policyNumber":   fmt.Sprintf("POL%d", g.faker.Number(100000, 999999)),
		"memberNumber":   fmt.Sprintf("MBR%d", g.faker.Number(100000, 999999)),
		"policyType":     g.faker.RandomString(policyTypes),
		"category":       g.faker.RandomString(policyCategories),
		"status":         g.faker.RandomString([]string{"Active", "Expired", "Suspended", "Cancelled"}),
		"startDate":      startDate.Format(time.DateOnly),
		"renewalDate":    startDate.AddDate(1, 0, 0).Format(time.DateOnly),
		"monthlyPremium": monthly,
		"annualPremium":  monthly * 12,
		"excess":         g.faker.RandomInt(excessAmounts),
		"benefits": map[string]any{
			"hospitalCover":  g.faker.Bool(),
			"extrasCover":    g.faker.Bool(),
			"ambulanceCover": g.faker.Bool(),
			"overseasCover":  g.faker.Bool(),
		},
		"limits": map[string]any{
			"annualLimit":  g.faker.RandomInt([]int{1000, 2000, 3000, 5000, 10000}),
			"dentalLimit":  g.faker.RandomInt([]int{500, 800, 1200, 2000}),
			"opticalLimit": g.faker.RandomInt([]int{200, 400, 600, 800}),
		},
		"lastUpdated": g.dateBetween(startDate, now).Format(time.DateOnly),
		"agentId":     fmt.Sprintf("AGT%d", g.faker.Number(1000, 9999)),
		"underwriter": g.faker.RandomString([]string{"nib Health", "nib Foundation", "nib Options"}),
	}
}

func (g *Generator) claim() map[string]any {
	now := g.now()
	serviceDate := g.dateBetween(now.AddDate(-1, 0, 0), now)

	excessAmount := 0
	if g.faker.Bool() {
		excessAmount = g.faker.RandomInt(excessAmounts)
	}

	return map[string]any{
		"id":                 g.faker.Number(100000, 999999),
		"claimNumber":        fmt.Sprintf("CLM%d", g.faker.Number(100000, 999999)),
		"memberNumber":       fmt.Sprintf("MBR%d", g.faker.Number(100000, 999999)),
		"policyNumber":       fmt.Sprintf("POL%d", g.faker.Number(100000, 999999)),
		"claimType":          g.faker.RandomString(claimTypes),
		"status":             g.faker.RandomString(claimStatuses),
		"dateOfService":      serviceDate.Format(time.DateOnly),
		"dateSubmitted":      serviceDate.AddDate(0, 0, g.faker.Number(1, 30)).Format(time.DateOnly),
		"providerName":       g.faker.Company(),
		"providerNumber":     fmt.Sprintf("PRV%d", g.faker.Number(10000, 99999)),
		"providerType":       g.faker.RandomString(providerTypes),
		"serviceDescription": fmt.Sprintf("%s - %s", g.faker.RandomString(claimTypes), g.faker.Slogan()),
		"totalAmount":        g.money(50, 2000),
		"claimedAmount":      g.money(30, 1500),
		"approvedAmount":     g.money(25, 1200),
		"excessApplied":      g.faker.Bool(),
		"excessAmount":       excessAmount,
		"processingTime":     fmt.Sprintf("%d days", g.faker.Number(1, 14)),
		"location": map[string]any{
			"suburb":   g.faker.City(),
			"state":    g.faker.RandomString(australianStates),
			"postcode": g.postcode(),
		},
		"notes":       g.faker.Sentence(8),
		"attachments": g.faker.Number(0, 3),
		"lastUpdated": serviceDate.AddDate(0, 0, g.faker.Number(1, 45)).Format(time.DateOnly),
	}
}

func (g *Generator) provider() map[string]any {
	now := g.now()

	serviceCount := g.faker.Number(2, 5)
	services := make([]string, len(providerServices))
	copy(services, providerServices)
	g.faker.ShuffleStrings(services)
	services = services[:serviceCount]

	return map[string]any{
		"id":             g.faker.Number(10000, 99999),
		"providerNumber": fmt.Sprintf("PRV%d", g.faker.Number(10000, 99999)),
		"businessName":   g.faker.Company(),
		"providerType":   g.faker.RandomString(providerTypes),
		"speciality":     g.faker.RandomString(specialities),
		"contactPerson": map[string]any{
			"name":  g.faker.Name(),
			"title": g.faker.RandomString([]string{"Dr.", "Manager", "Administrator", "Director"}),
			"email": g.faker.Email(),
			"phone": g.phone(),
		},
		"address": g.address(),
		"businessHours": map[string]any{
			"weekdays": "9:00 AM - 5:00 PM",
			"saturday": g.faker.RandomString([]string{"9:00 AM - 1:00 PM", "Closed"}),
			"sunday":   "Closed",
		},
		"services": services,
		"accreditation": map[string]any{
			"status":         g.faker.RandomString([]string{"Accredited", "Pending", "Expired"}),
			"expiryDate":     g.dateBetween(now, now.AddDate(2, 0, 0)).Format(time.DateOnly),
			"certifyingBody": g.faker.RandomString([]string{"ACHS", "QIC", "NSQHS"}),
		},
		"rating":             math.Round(g.faker.Float64Range(3.5, 5.0)*10) / 10,
		"totalClaims":        g.faker.Number(50, 2000),
		"averageClaimAmount": g.money(100, 800),
		"status":             g.faker.RandomString([]string{"Active", "Inactive", "Suspended"}),
		"joinedDate":         g.dateBetween(now.AddDate(-5, 0, 0), now.AddDate(-1, 0, 0)).Format(time.DateOnly),
		"lastClaimDate":      g.dateBetween(now.AddDate(0, -3, 0), now).Format(time.DateOnly),
	}
}

func (g *Generator) address() map[string]any {
	return map[string]any{
		"street":   fmt.Sprintf("%d %s", g.faker.Number(1, 400), g.faker.Street()),
		"suburb":   g.faker.City(),
		"state":    g.faker.RandomString(australianStates),
		"postcode": g.postcode(),
	}
}

// phone produces an Australian mobile number.
func (g *Generator) phone() string {
	return fmt.Sprintf("04%02d %03d %03d", g.faker.Number(0, 99), g.faker.Number(0, 999), g.faker.Number(0, 999))
}

// postcode produces a plausible Australian four-digit postcode.
func (g *Generator) postcode() string {
	return fmt.Sprintf("%04d", g.faker.Number(800, 7999))
}

func (g *Generator) premium() int {
	return g.faker.RandomInt(premiumBases) + g.faker.Number(0, 50)
}

func (g *Generator) money(min, max float64) float64 {
	return math.Round(g.faker.Float64Range(min, max)*100) / 100
}

func (g *Generator) dateBetween(start, end time.Time) time.Time {
	return g.faker.DateRange(start, end)
}
