package service

import (
	"time"

	"github.com/smcs-alumni/alumni-portal/internal/core/ports"
)

// publicLimit caps every public home-page list.
const publicLimit = 3

// AnnouncementPolicy: dashboard shows newest-created first; the home page
// shows the 3 most recent by announcement date.
var AnnouncementPolicy = ports.ContentPolicy{
	Kind:      "announcements",
	AdminList: ports.ListQuery{SortField: "created_at", Ascending: false},
	PublicList: func(time.Time) ports.ListQuery {
		return ports.ListQuery{SortField: "date", Ascending: false, Limit: publicLimit}
	},
}

// EventPolicy: dashboard shows latest-dated first; the home page shows the
// next 3 upcoming events, earliest first, past events excluded.
var EventPolicy = ports.ContentPolicy{
	Kind:      "events",
	AdminList: ports.ListQuery{SortField: "date", Ascending: false},
	PublicList: func(now time.Time) ports.ListQuery {
		return ports.ListQuery{SortField: "date", Ascending: true, Limit: publicLimit, NotBefore: &now}
	},
}

// AlumniPolicy: both views order by graduation year descending; the home
// page caps at 3.
var AlumniPolicy = ports.ContentPolicy{
	Kind:      "featured_alumni",
	AdminList: ports.ListQuery{SortField: "graduation_year", Ascending: false},
	PublicList: func(time.Time) ports.ListQuery {
		return ports.ListQuery{SortField: "graduation_year", Ascending: false, Limit: publicLimit}
	},
}
