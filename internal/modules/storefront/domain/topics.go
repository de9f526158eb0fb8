package domain

import "strings"

const (
	SystemEntity = "system"
	UIEntity     = "ui"

	TopicSystemConnected = SystemEntity + ".connected"
	TopicSystemPong      = SystemEntity + ".pong"
	TopicSystemError     = SystemEntity + ".error"

	// Fragment topics carry rendered HTML for one page region.
	TopicMenuFragment        = "menu.fragment"
	TopicBestsellersFragment = "bestsellers.fragment"
	TopicLocationFragment    = "location.fragment"
	TopicScheduleFragment    = "schedule.fragment"
	TopicShellFragment       = "shell.fragment"
	TopicContactStatus       = "contact.status"

	// UI topics carry state-machine outcomes back to the browser shim.
	TopicUIReveal   = UIEntity + ".reveal"
	TopicUICarousel = UIEntity + ".carousel"
	TopicUIHeader   = UIEntity + ".header"
	TopicUINav      = UIEntity + ".nav"
	TopicUIScroll   = UIEntity + ".scroll"

	// TopicContactReceived is the admin notification stream topic.
	TopicContactReceived = "notifications.contact"

	ActionConnected = "connected"
	ActionPong      = "pong"
	ActionError     = "error"
	ActionFragment  = "fragment"
	ActionState     = "state"
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
)

// FragmentTopic returns the canonical fragment topic for a page region.
func FragmentTopic(region string) string {
	clean := strings.TrimSpace(region)
	if clean == "" {
		return ""
	}
	return clean + "." + ActionFragment
}
