package viewmodel

// FAQItem is a single question on the landing page
type FAQItem struct {
	Question string
	Answer   string
}

// Testimonial is a creator quote shown on the landing page
type Testimonial struct {
	Name   string
	Handle string
	Text   string
}

// Step describes one stage of the "how it works" section
type Step struct {
	Num         string
	Title       string
	Description string
}

// Benefit is a program perk shown on the landing page
type Benefit struct {
	Icon        string
	Title       string
	Description string
}

// Stat is a headline program number
type Stat struct {
	Value string
	Label string
}

// LandingFAQ returns the landing page FAQ entries
func LandingFAQ() []FAQItem {
	return []FAQItem{
		{
			Question: "How do I join?",
			Answer:   "Fill out the application form on this page. Once approved, you'll receive your unique creator code and access to your personal dashboard where you can track everything.",
		},
		{
			Question: "Where do I find my links & creatives?",
			Answer:   "All your referral links, creative assets, and promotional materials are available in your creator dashboard after approval.",
		},
		{
			Question: "What's the revenue share?",
			Answer:   "You earn £25 per subscription when someone uses your code, completes the free trial, and converts to an annual subscription.",
		},
		{
			Question: "When do I get paid?",
			Answer:   "Payments are processed monthly via Modash. You'll need to send a monthly invoice to receive your earnings.",
		},
		{
			Question: "Is there a minimum or maximum payout?",
			Answer:   "There is no minimum or maximum payout. Our top referrer has earned over £80,000 through the program.",
		},
		{
			Question: "Are there any deliverables?",
			Answer:   "No deliverables at all! There are no content requirements or posting schedules. You can promote NeoTaste however you want, whenever you want.",
		},
		{
			Question: "How do I get free access?",
			Answer:   "After your application is approved, you'll receive a special personal-use code that gives you free access to NeoTaste for your own dining experiences.",
		},
		{
			Question: "Creator code vs in-app referrals?",
			Answer:   "Your creator code is specifically for sharing with your audience and tracking your referrals. In-app referrals are a separate system for regular users and are not connected to your creator earnings.",
		},
		{
			Question: "Food expense for shoots?",
			Answer:   "Food expenses are not covered for your first 2 videos. After that, you can claim up to £50 per shoot by submitting an invoice with a photo of your receipt.",
		},
	}
}

// LandingTestimonials returns the landing page creator quotes
func LandingTestimonials() []Testimonial {
	return []Testimonial{
		{
			Name:   "Sarah K.",
			Handle: "@sarahfoodie",
			Text:   "NeoTaste's creator program changed my content game. I was earning within the first week and the dashboard makes tracking so easy!",
		},
		{
			Name:   "James L.",
			Handle: "@jamescityeats",
			Text:   "No deliverables, no pressure. I just share what I love and the earnings keep coming in. Best partnership I've ever had.",
		},
		{
			Name:   "Mia R.",
			Handle: "@miatastesworld",
			Text:   "Hit 200 subscribers in my first month. The £25 per sub really adds up. Plus, they cover food expenses after your first two videos!",
		},
	}
}

// LandingSteps returns the "how it works" stages
func LandingSteps() []Step {
	return []Step{
		{Num: "01", Title: "Apply", Description: "Fill out the application form and tell us about your content."},
		{Num: "02", Title: "Get Your Code", Description: "Receive your unique creator code and dashboard access."},
		{Num: "03", Title: "Share & Promote", Description: "Share your code with your audience however you like — no rules."},
		{Num: "04", Title: "Dashboard & Payments", Description: "Track referrals in real-time and get paid monthly via Modash."},
	}
}

// LandingBenefits returns the program perks
func LandingBenefits() []Benefit {
	return []Benefit{
		{Icon: "👥", Title: "No Follower Minimum", Description: "We welcome creators of all sizes. Quality content matters more than follower counts."},
		{Icon: "📊", Title: "Real-time Dashboard", Description: "Track your referrals, earnings, and performance metrics in real-time."},
		{Icon: "💰", Title: "Monthly Payouts", Description: "Get paid every month via Modash. No waiting around for your earnings."},
		{Icon: "🎨", Title: "Creative Assets", Description: "Access branded templates, logos, and promotional materials in your dashboard."},
		{Icon: "🚫", Title: "No Deliverables", Description: "Zero content requirements or posting schedules. Promote however you want."},
		{Icon: "🍽️", Title: "Food Expenses Covered", Description: "After your first 2 videos, claim up to £50 per shoot with receipt."},
	}
}

// LandingStats returns the headline numbers
func LandingStats() []Stat {
	return []Stat{
		{Value: "7,000+", Label: "Partner Restaurants"},
		{Value: "£25", Label: "Per Subscription"},
		{Value: "4", Label: "Countries Active"},
		{Value: "£80K+", Label: "Top Earner"},
	}
}
