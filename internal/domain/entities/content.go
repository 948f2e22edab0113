package entities

import "github.com/shopspring/decimal"

// Static portal reference content. None of it feeds the replenishment
// pipeline; it is read-only display data served at the portal edges.

// AccountSummary is the distributor's credit/balance snapshot.
type AccountSummary struct {
	CreditLimit    decimal.Decimal `json:"credit_limit"`
	CreditUsed     decimal.Decimal `json:"credit_used"`
	Balance        decimal.Decimal `json:"balance"`
	RebatePool     decimal.Decimal `json:"rebate_pool"`
	OrdersPending  int             `json:"orders_pending"`
	OrdersShipping int             `json:"orders_shipping"`
	NextBillDate   string          `json:"next_bill_date"`
}

type Announcement struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Tag       string `json:"tag"`
	Important bool   `json:"important"`
}

type Insight struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// KnowledgeBaseEntry is one node of the scripted assistant's fixed
// lookup table. Matching is plain keyword containment, not reasoning.
type KnowledgeBaseEntry struct {
	Keywords         []string
	Answer           string
	FollowUp         string
	MarketingTrigger bool
}

type MarketingTemplate struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func DefaultAccountSummary() AccountSummary {
	return AccountSummary{
		CreditLimit:    decimal.NewFromInt(2000000),
		CreditUsed:     decimal.NewFromInt(1250000),
		Balance:        decimal.NewFromFloat(85600.00),
		RebatePool:     decimal.NewFromFloat(42500.00),
		OrdersPending:  2,
		OrdersShipping: 1,
		NextBillDate:   "2023-11-05",
	}
}

func DefaultAnnouncements() []Announcement {
	return []Announcement{
		{ID: 1, Title: "Q4 Rocephin supply price adjustment notice", Date: "10-15", Tag: "policy", Important: true},
		{ID: 2, Title: "2023 flu season stock preparation guidance", Date: "10-12", Tag: "operations"},
		{ID: 3, Title: "Portal maintenance window: Saturday 02:00-04:00", Date: "10-10", Tag: "system"},
	}
}

func DefaultInsights() []Insight {
	return []Insight{
		{
			ID:          1,
			Type:        "critical",
			Title:       "High flu activity detected",
			Description: "Regional CDC data shows flu cases up 15% week over week. Oseltamivir demand is expected to surge.",
		},
		{
			ID:          2,
			Type:        "opportunity",
			Title:       "Approaching Q4 rebate target",
			Description: "You are 450 units away from the tier-two rebate (extra 3% discount).",
		},
	}
}

func DefaultKnowledgeBase() []KnowledgeBaseEntry {
	return []KnowledgeBaseEntry{
		{
			Keywords: []string{"gsp", "storage", "temperature", "humidity"},
			Answer: "Per the current GSP appendix and product leaflets:\n" +
				"1. Tamiflu: keep sealed, store below 20C.\n" +
				"2. Rocephin: protect from light, store in a cool dry place.\n" +
				"Keep warehouse humidity between 45% and 75%.",
			FollowUp: "Need a pharmacy training poster on Tamiflu storage?",
		},
		{
			Keywords: []string{"expiry", "expiration", "shelf life"},
			Answer: "Tamiflu is typically good for 5 years, Rocephin for 3 years.\n" +
				"Batch B202309 of Xeloda in your warehouse has 3 months left; prioritise it for outbound.",
			FollowUp: "Want a short-dated promotion plan generated?",
		},
		{
			Keywords:         []string{"marketing", "copy", "promo", "poster", "campaign"},
			Answer:           "Got it. Pulling the latest materials from the marketing library...",
			MarketingTrigger: true,
		},
	}
}

func DefaultMarketingTemplates() []MarketingTemplate {
	return []MarketingTemplate{
		{
			Kind:  "wechat",
			Title: "Social feed post (emotional)",
			Content: "Flu season is here - keep your family on schedule!\n" +
				"Keep Tamiflu at home: a first-line antiviral recommended by the WHO.\n" +
				"The 48-hour treatment window matters. [Your pharmacy name] has stock ready.",
		},
		{
			Kind:  "poster",
			Title: "In-store poster (professional)",
			Content: "[Flu season health brief]\n" +
				"Common cold vs influenza - can you tell them apart?\n" +
				"High fever and chills? Muscle aches?\n" +
				"Ask for oseltamivir (Tamiflu). Treat early, treat right.",
		},
		{
			Kind:  "sms",
			Title: "Member promotion SMS (direct)",
			Content: "[Your pharmacy] Flu activity is high in your area. Tamiflu is back in stock; " +
				"members get 5% off this week. Reply STOP to opt out.",
		},
	}
}
