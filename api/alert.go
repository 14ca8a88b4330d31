package api

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/anirudhraja/osdwire/message"
)

// Alert is an event raised against a volume, node, cluster or drive.
type Alert struct{ m *message.Message }

func NewAlert() *Alert { return &Alert{m: mustNew("Alert")} }

func (x *Alert) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *Alert) GetId() int64 {
	if x == nil {
		return 0
	}
	return x.m.GetInt64("id")
}

func (x *Alert) SetId(v int64) { set(x.m, "id", v) }

func (x *Alert) GetSeverity() SeverityType {
	if x == nil {
		return SeverityType_SEVERITY_TYPE_NONE
	}
	return SeverityType(x.m.GetEnum("severity"))
}

func (x *Alert) SetSeverity(v SeverityType) { set(x.m, "severity", v) }

func (x *Alert) GetAlertType() int64 {
	if x == nil {
		return 0
	}
	return x.m.GetInt64("alert_type")
}

func (x *Alert) SetAlertType(v int64) { set(x.m, "alert_type", v) }

func (x *Alert) GetMessage() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("message")
}

func (x *Alert) SetMessage(v string) { set(x.m, "message", v) }

func (x *Alert) GetTimestamp() *timestamppb.Timestamp {
	if x == nil {
		return nil
	}
	return getTimestamp(x.m, "timestamp")
}

func (x *Alert) SetTimestamp(v *timestamppb.Timestamp) { setTimestamp(x.m, "timestamp", v) }

func (x *Alert) GetResource() ResourceType {
	if x == nil {
		return ResourceType_RESOURCE_TYPE_NONE
	}
	return ResourceType(x.m.GetEnum("resource"))
}

func (x *Alert) SetResource(v ResourceType) { set(x.m, "resource", v) }

func (x *Alert) GetResourceId() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("resource_id")
}

func (x *Alert) SetResourceId(v string) { set(x.m, "resource_id", v) }

func (x *Alert) GetCleared() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("cleared")
}

func (x *Alert) SetCleared(v bool) { set(x.m, "cleared", v) }

func (x *Alert) GetTtl() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("ttl")
}

func (x *Alert) SetTtl(v uint64) { set(x.m, "ttl", v) }

func (x *Alert) GetUniqueTag() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("unique_tag")
}

func (x *Alert) SetUniqueTag(v string) { set(x.m, "unique_tag", v) }

func (x *Alert) GetCount() int64 {
	if x == nil {
		return 0
	}
	return x.m.GetInt64("count")
}

func (x *Alert) SetCount(v int64) { set(x.m, "count", v) }

func (x *Alert) GetFirstSeen() *timestamppb.Timestamp {
	if x == nil {
		return nil
	}
	return getTimestamp(x.m, "first_seen")
}

func (x *Alert) SetFirstSeen(v *timestamppb.Timestamp) { setTimestamp(x.m, "first_seen", v) }

func wrapAlert(m *message.Message) *Alert {
	if m == nil {
		return nil
	}
	return &Alert{m: m}
}

// Alerts is a list of alerts.
type Alerts struct{ m *message.Message }

func NewAlerts() *Alerts { return &Alerts{m: mustNew("Alerts")} }

func (x *Alerts) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *Alerts) GetAlert() []*Alert {
	if x == nil {
		return nil
	}
	return wrapList(x.m.GetMessages("alert"), wrapAlert)
}

func (x *Alerts) SetAlert(v []*Alert) { setList(x.m, "alert", v) }

// Add appends a to the list.
func (x *Alerts) Add(a *Alert) {
	if a == nil {
		return
	}
	if err := x.m.Append("alert", a.Dynamic()); err != nil {
		panic("api: Alerts.alert: " + err.Error())
	}
}
