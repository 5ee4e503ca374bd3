package content

// FAQ is one question/answer pair in the disclosure list.
type FAQ struct {
	Question string
	Answer   string
}

// FAQClosed marks that no FAQ item is expanded.
const FAQClosed = -1

// FAQs in display order. The first item starts expanded.
var FAQs = []FAQ{
	{
		Question: "What is EMG – Elevation Mentorship Group?",
		Answer:   "EMG is a mentorship and coaching platform dedicated to helping people grow in life",
	},
	{
		Question: "Who can join EMG?",
		Answer:   "Anyone who is committed to personal growth and transformation can join EMG.",
	},
	{
		Question: "What services do you provide?",
		Answer:   "We provide comprehensive mentorship services including personal development, business coaching, financial education, and wellness guidance.",
	},
	{
		Question: "How do I get started?",
		Answer:   "You can get started by booking a free consultation call where we'll discuss your goals and how EMG can help you achieve them.",
	},
	{
		Question: "Do I need prior experience?",
		Answer:   "No prior experience is needed. Our mentorship program is designed to meet you where you are and help you grow from there.",
	},
	{
		Question: "Is EMG only about business and money?",
		Answer:   "No, EMG covers all aspects of life including personal development, relationships, health, wellness, and much more beyond just business and finance.",
	},
	{
		Question: "How does the mentorship work?",
		Answer:   "Our mentorship includes one-on-one sessions, group coaching, educational resources, and ongoing support to help you achieve your goals.",
	},
	{
		Question: "Can I connect with other members?",
		Answer:   "Yes, EMG has a strong community aspect where members can connect, share experiences, and support each other's growth journey.",
	},
	{
		Question: "Is there support if I get stuck?",
		Answer:   "Absolutely! We provide ongoing support through direct mentoring, community help, and additional resources whenever you need assistance.",
	},
	{
		Question: "Why should I join EMG?",
		Answer:   "EMG offers personalized mentorship, proven strategies, and a supportive community to help you achieve lasting transformation in all areas of your life.",
	},
}

// ToggleFAQ returns the index left expanded after selecting item clicked
// while item open is expanded. At most one item is ever open: selecting the
// open item collapses it, selecting another switches to it. Out-of-range
// selections leave the current state untouched.
func ToggleFAQ(open, clicked int) int {
	if clicked < 0 || clicked >= len(FAQs) {
		return open
	}
	if open == clicked {
		return FAQClosed
	}
	return clicked
}
