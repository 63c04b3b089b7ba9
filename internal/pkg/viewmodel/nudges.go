package viewmodel

// TimelineEvent is one stage of the creator lifecycle shown on the nudges page
type TimelineEvent struct {
	Day         string
	Title       string
	Description string
}

// Automation describes one lifecycle messaging rule
type Automation struct {
	ID       int
	Title    string
	Trigger  string
	Channel  string
	Template string
}

// NudgeTimeline returns the creator lifecycle stages
func NudgeTimeline() []TimelineEvent {
	return []TimelineEvent{
		{Day: "Day 0", Title: "Onboarding Complete", Description: "Creator signs up and receives their unique code and dashboard access."},
		{Day: "Day 7", Title: "First Video Nudge", Description: "If no content posted, send a friendly reminder with content ideas."},
		{Day: "Day 14+", Title: "Engagement Loop", Description: "Weekly check-ins and milestone celebrations keep creators active."},
		{Day: "Milestones", Title: "Achievement Rewards", Description: "Celebrate 1st referral, 10 referrals, 50 referrals and more."},
	}
}

// NudgeAutomations returns the lifecycle messaging catalog
func NudgeAutomations() []Automation {
	return []Automation{
		{
			ID:      1,
			Title:   "First Video Nudge",
			Trigger: "7 days after signup, no content posted",
			Channel: "Email",
			Template: `Hi {{first_name}} 👋

Welcome to NeoTaste! We noticed you haven't posted your first video yet — no pressure at all!

Here are some quick ideas to get started:
• Visit a trending restaurant and share your honest review
• Try our "Top 5 dishes" format — it always performs well
• Share a quick story about a hidden gem in {{city}}

Your code is {{creator_code}} — share it whenever you're ready!

Best,
The NeoTaste Team`,
		},
		{
			ID:      2,
			Title:   "Weekly Inactive Reminder",
			Trigger: "7+ days since last activity",
			Channel: "WhatsApp",
			Template: `Hey {{first_name}}! 🍽️

It's been a while since your last post. Your audience is waiting!

Quick stats:
• Your code {{creator_code}} has been used {{code_uses}} times
• You have {{paying_subscribers}} paying subscribers
• Current earnings: {{total_earnings}}

Need content ideas? Check your dashboard for trending restaurants in {{city}}.

Keep creating! 🚀`,
		},
		{
			ID:      3,
			Title:   "First Referral Celebration",
			Trigger: "First successful referral conversion",
			Channel: "Email",
			Template: `🎉 Congratulations {{first_name}}!

You just earned your FIRST referral! Someone used your code {{creator_code}} and converted to a paying subscriber.

That's £25 earned! 💰

Here's how to keep the momentum going:
• Pin your NeoTaste content to your profile
• Add your code to your bio
• Create a "why I love NeoTaste" video

You're on your way! 🌟`,
		},
		{
			ID:      4,
			Title:   "10 Referrals Milestone",
			Trigger: "10 successful referral conversions",
			Channel: "Email",
			Template: `🔥 10 Referrals! Amazing work {{first_name}}!

You've hit double digits — 10 people are now enjoying NeoTaste thanks to you!

Your earnings so far: £{{total_earnings}}

As a thank you, we've upgraded your food expense limit. You can now claim up to £75 per restaurant visit (was £50).

Keep going — the top creators earn over £80,000! 🏆`,
		},
		{
			ID:      5,
			Title:   "50 Referrals Milestone — Star Creator",
			Trigger: "50 successful referral conversions",
			Channel: "WhatsApp",
			Template: `⭐ STAR CREATOR STATUS! ⭐

{{first_name}}, you are officially a NeoTaste Star Creator!

50 referrals is incredible. You're in the top 5% of all creators.

Your rewards:
🌟 Star Creator badge on your profile
🍽️ Unlimited food expense coverage
📸 Priority access to new restaurant partners
💬 Direct line to our creator success team

Total earned: £{{total_earnings}}

Thank you for being amazing! 🙌`,
		},
		{
			ID:      6,
			Title:   "Content Ideas Weekly",
			Trigger: "Every Monday at 9:00 AM",
			Channel: "Email",
			Template: `Good morning {{first_name}}! ☀️

Here are this week's content ideas for {{city}}:

🆕 New on NeoTaste:
{{new_restaurants}}

🔥 Trending this week:
{{trending_restaurants}}

💡 Content format idea:
"{{weekly_format_suggestion}}"

Quick tip: Videos posted on {{best_day}} tend to get {{engagement_lift}}% more engagement!

Happy creating! 🎬`,
		},
	}
}
