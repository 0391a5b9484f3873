package seed

import (
	"context"
	"time"

	"go.uber.org/zap"

	"compliance-tracker/internal/config"
	"compliance-tracker/internal/domain"
	"compliance-tracker/internal/repository"
	"compliance-tracker/internal/service"
)

// Run provisions the admin account and, unless disabled, loads sample
// content into an empty database so a fresh deployment has something to
// browse.
func Run(ctx context.Context, repos *repository.Repositories, services *service.Services, cfg *config.Config, log *zap.Logger) error {
	if err := services.Auth.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return err
	}

	if cfg.SkipSampleData {
		return nil
	}

	count, err := repos.Regulation.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info("seeding sample regulations and updates")

	for _, input := range sampleRegulations() {
		if _, err := services.Regulation.Create(ctx, input); err != nil {
			return err
		}
	}
	for _, input := range sampleUpdates() {
		if _, err := services.Update.Create(ctx, input); err != nil {
			return err
		}
	}

	return nil
}

func sampleRegulations() []domain.CreateRegulationInput {
	return []domain.CreateRegulationInput{
		{
			JurisdictionLevel:    domain.JurisdictionNational,
			JurisdictionName:     "United States",
			Location:             "USA",
			Title:                "Federal STR Tax Reporting",
			Overview:             ptr("Income from short-term rentals must be reported to the IRS."),
			DetailedRequirements: ptr("Report rental income on Schedule E. Platforms issue Form 1099-K above the federal threshold. Rentals of fewer than 15 days per year may qualify for the exemption under Section 280A."),
			ComplianceSteps:      ptr("Track rental income and expenses; retain platform payout statements; file Schedule E with your annual return."),
			RequiredForms:        ptr("Schedule E, Form 1099-K"),
			Penalties:            ptr("Interest and accuracy-related penalties on underreported income."),
			Category:             "Taxes",
			ComplianceLevel:      "Mandatory",
			PropertyType:         domain.PropertyBoth,
			Keywords:             ptr("tax, IRS, income, 1099, schedule e"),
		},
		{
			JurisdictionLevel:    domain.JurisdictionState,
			JurisdictionName:     "State of Texas",
			Location:             "Texas",
			Title:                "Texas STR Registration",
			Overview:             ptr("Hosts must collect and remit the state hotel occupancy tax."),
			DetailedRequirements: ptr("Short-term rentals of fewer than 30 consecutive days are subject to the 6% state hotel occupancy tax. Hosts not covered by marketplace collection must register with the Comptroller and file monthly or quarterly."),
			ComplianceSteps:      ptr("Register for a hotel occupancy tax permit; collect 6% on each stay; remit on the assigned filing schedule."),
			RequiredForms:        ptr("Texas Hotel Occupancy Tax Report"),
			Penalties:            ptr("5% penalty on late filings, rising to 10% after 30 days, plus interest."),
			Category:             "Registration",
			ComplianceLevel:      "Mandatory",
			PropertyType:         domain.PropertyResidential,
			Keywords:             ptr("texas, hotel occupancy tax, registration, comptroller"),
		},
		{
			JurisdictionLevel:    domain.JurisdictionLocal,
			JurisdictionName:     "City of Austin",
			Location:             "Austin",
			Title:                "Austin STR Zoning Requirements",
			Overview:             ptr("Operating licenses are required and zoning limits apply by rental type."),
			DetailedRequirements: ptr("Austin classifies short-term rentals as Type 1 (owner-occupied), Type 2 (not owner-occupied) and Type 3 (multifamily). All types require an operating license; Type 2 licenses are capped in residential zones."),
			ComplianceSteps:      ptr("Confirm the property's zoning classification; apply for the matching license type; post the license number in all listings."),
			RequiredForms:        ptr("City of Austin STR License Application"),
			Penalties:            ptr("Fines up to $2,000 per day of unlicensed operation."),
			Category:             "Zoning",
			ComplianceLevel:      "Mandatory",
			PropertyType:         domain.PropertyResidential,
			Keywords:             ptr("austin, zoning, license, type 2, owner-occupied"),
		},
	}
}

func sampleUpdates() []domain.CreateUpdateInput {
	effective := time.Now().AddDate(0, 2, 0)
	decision := time.Now().AddDate(0, 1, 0)

	return []domain.CreateUpdateInput{
		{
			Title:          "1099-K Reporting Threshold Change",
			Description:    "The federal reporting threshold for platform payouts has been lowered; more hosts will receive a 1099-K next filing season.",
			Jurisdiction:   "USA",
			Status:         domain.StatusRecent,
			Category:       "Taxes",
			ImpactLevel:    domain.ImpactHigh,
			Priority:       domain.PriorityHigh,
			ActionRequired: true,
			ActionDescription: ptr(
				"Review payout records and confirm your taxpayer information is current with each platform."),
			Summary: ptr("Lower 1099-K threshold expands platform income reporting."),
		},
		{
			Title:         "Austin License Renewal Window Opens",
			Description:   "Annual STR operating license renewals open next quarter; renewals filed after the deadline restart the full application process.",
			Jurisdiction:  "Austin",
			Status:        domain.StatusUpcoming,
			Category:      "Licensing",
			ImpactLevel:   domain.ImpactMedium,
			Priority:      domain.PriorityMedium,
			EffectiveDate: &effective,
		},
		{
			Title:                "Proposed Statewide STR Preemption Bill",
			Description:          "A bill under committee review would preempt municipal caps on short-term rental licenses statewide.",
			Jurisdiction:         "Texas",
			Status:               domain.StatusProposed,
			Category:             "Zoning",
			ImpactLevel:          domain.ImpactHigh,
			Priority:             domain.PriorityMedium,
			ExpectedDecisionDate: &decision,
			DecisionStatus:       ptr("Under Review"),
		},
	}
}

func ptr(s string) *string {
	return &s
}
