package api

import (
	"github.com/anirudhraja/osdwire/message"
)

// PeriodTypeCase reports which period a schedule interval uses. The values
// are the field numbers of the period_type members.
type PeriodTypeCase int32

const (
	PeriodTypeNotSet   PeriodTypeCase = 0
	PeriodTypePeriodic PeriodTypeCase = 200
	PeriodTypeDaily    PeriodTypeCase = 201
	PeriodTypeWeekly   PeriodTypeCase = 202
	PeriodTypeMonthly  PeriodTypeCase = 203
)

type SdkSchedulePolicyIntervalDaily struct{ m *message.Message }

func NewSdkSchedulePolicyIntervalDaily() *SdkSchedulePolicyIntervalDaily {
	return &SdkSchedulePolicyIntervalDaily{m: mustNew("SdkSchedulePolicyIntervalDaily")}
}

func (x *SdkSchedulePolicyIntervalDaily) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkSchedulePolicyIntervalDaily) GetHour() int32 {
	if x == nil {
		return 0
	}
	return x.m.GetInt32("hour")
}

func (x *SdkSchedulePolicyIntervalDaily) SetHour(v int32) { set(x.m, "hour", v) }

func (x *SdkSchedulePolicyIntervalDaily) GetMinute() int32 {
	if x == nil {
		return 0
	}
	return x.m.GetInt32("minute")
}

func (x *SdkSchedulePolicyIntervalDaily) SetMinute(v int32) { set(x.m, "minute", v) }

type SdkSchedulePolicyIntervalWeekly struct{ m *message.Message }

func NewSdkSchedulePolicyIntervalWeekly() *SdkSchedulePolicyIntervalWeekly {
	return &SdkSchedulePolicyIntervalWeekly{m: mustNew("SdkSchedulePolicyIntervalWeekly")}
}

func (x *SdkSchedulePolicyIntervalWeekly) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkSchedulePolicyIntervalWeekly) GetDay() SdkTimeWeekday {
	if x == nil {
		return SdkTimeWeekday_SdkTimeWeekdaySunday
	}
	return SdkTimeWeekday(x.m.GetEnum("day"))
}

func (x *SdkSchedulePolicyIntervalWeekly) SetDay(v SdkTimeWeekday) { set(x.m, "day", v) }

func (x *SdkSchedulePolicyIntervalWeekly) GetHour() int32 {
	if x == nil {
		return 0
	}
	return x.m.GetInt32("hour")
}

func (x *SdkSchedulePolicyIntervalWeekly) SetHour(v int32) { set(x.m, "hour", v) }

func (x *SdkSchedulePolicyIntervalWeekly) GetMinute() int32 {
	if x == nil {
		return 0
	}
	return x.m.GetInt32("minute")
}

func (x *SdkSchedulePolicyIntervalWeekly) SetMinute(v int32) { set(x.m, "minute", v) }

type SdkSchedulePolicyIntervalMonthly struct{ m *message.Message }

func NewSdkSchedulePolicyIntervalMonthly() *SdkSchedulePolicyIntervalMonthly {
	return &SdkSchedulePolicyIntervalMonthly{m: mustNew("SdkSchedulePolicyIntervalMonthly")}
}

func (x *SdkSchedulePolicyIntervalMonthly) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkSchedulePolicyIntervalMonthly) GetDay() int32 {
	if x == nil {
		return 0
	}
	return x.m.GetInt32("day")
}

func (x *SdkSchedulePolicyIntervalMonthly) SetDay(v int32) { set(x.m, "day", v) }

func (x *SdkSchedulePolicyIntervalMonthly) GetHour() int32 {
	if x == nil {
		return 0
	}
	return x.m.GetInt32("hour")
}

func (x *SdkSchedulePolicyIntervalMonthly) SetHour(v int32) { set(x.m, "hour", v) }

func (x *SdkSchedulePolicyIntervalMonthly) GetMinute() int32 {
	if x == nil {
		return 0
	}
	return x.m.GetInt32("minute")
}

func (x *SdkSchedulePolicyIntervalMonthly) SetMinute(v int32) { set(x.m, "minute", v) }

type SdkSchedulePolicyIntervalPeriodic struct{ m *message.Message }

func NewSdkSchedulePolicyIntervalPeriodic() *SdkSchedulePolicyIntervalPeriodic {
	return &SdkSchedulePolicyIntervalPeriodic{m: mustNew("SdkSchedulePolicyIntervalPeriodic")}
}

func (x *SdkSchedulePolicyIntervalPeriodic) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkSchedulePolicyIntervalPeriodic) GetSeconds() int64 {
	if x == nil {
		return 0
	}
	return x.m.GetInt64("seconds")
}

func (x *SdkSchedulePolicyIntervalPeriodic) SetSeconds(v int64) { set(x.m, "seconds", v) }

// SdkSchedulePolicyInterval is one schedule of a policy and how many
// snapshots it retains.
type SdkSchedulePolicyInterval struct{ m *message.Message }

func NewSdkSchedulePolicyInterval() *SdkSchedulePolicyInterval {
	return &SdkSchedulePolicyInterval{m: mustNew("SdkSchedulePolicyInterval")}
}

func (x *SdkSchedulePolicyInterval) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkSchedulePolicyInterval) GetRetain() int64 {
	if x == nil {
		return 0
	}
	return x.m.GetInt64("retain")
}

func (x *SdkSchedulePolicyInterval) SetRetain(v int64) { set(x.m, "retain", v) }

func (x *SdkSchedulePolicyInterval) GetPeriodTypeCase() PeriodTypeCase {
	if x == nil {
		return PeriodTypeNotSet
	}
	f := x.m.WhichOneof("period_type")
	if f == nil {
		return PeriodTypeNotSet
	}
	return PeriodTypeCase(f.Number)
}

func (x *SdkSchedulePolicyInterval) GetPeriodic() *SdkSchedulePolicyIntervalPeriodic {
	if x == nil {
		return nil
	}
	if m := x.m.GetMessage("periodic"); m != nil {
		return &SdkSchedulePolicyIntervalPeriodic{m: m}
	}
	return nil
}

func (x *SdkSchedulePolicyInterval) SetPeriodic(v *SdkSchedulePolicyIntervalPeriodic) {
	setMessage(x.m, "periodic", v)
}

func (x *SdkSchedulePolicyInterval) GetDaily() *SdkSchedulePolicyIntervalDaily {
	if x == nil {
		return nil
	}
	if m := x.m.GetMessage("daily"); m != nil {
		return &SdkSchedulePolicyIntervalDaily{m: m}
	}
	return nil
}

func (x *SdkSchedulePolicyInterval) SetDaily(v *SdkSchedulePolicyIntervalDaily) {
	setMessage(x.m, "daily", v)
}

func (x *SdkSchedulePolicyInterval) GetWeekly() *SdkSchedulePolicyIntervalWeekly {
	if x == nil {
		return nil
	}
	if m := x.m.GetMessage("weekly"); m != nil {
		return &SdkSchedulePolicyIntervalWeekly{m: m}
	}
	return nil
}

func (x *SdkSchedulePolicyInterval) SetWeekly(v *SdkSchedulePolicyIntervalWeekly) {
	setMessage(x.m, "weekly", v)
}

func (x *SdkSchedulePolicyInterval) GetMonthly() *SdkSchedulePolicyIntervalMonthly {
	if x == nil {
		return nil
	}
	if m := x.m.GetMessage("monthly"); m != nil {
		return &SdkSchedulePolicyIntervalMonthly{m: m}
	}
	return nil
}

func (x *SdkSchedulePolicyInterval) SetMonthly(v *SdkSchedulePolicyIntervalMonthly) {
	setMessage(x.m, "monthly", v)
}

func wrapSchedulePolicyInterval(m *message.Message) *SdkSchedulePolicyInterval {
	if m == nil {
		return nil
	}
	return &SdkSchedulePolicyInterval{m: m}
}

// SdkSchedulePolicy is a named set of schedules.
type SdkSchedulePolicy struct{ m *message.Message }

func NewSdkSchedulePolicy() *SdkSchedulePolicy {
	return &SdkSchedulePolicy{m: mustNew("SdkSchedulePolicy")}
}

func (x *SdkSchedulePolicy) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkSchedulePolicy) GetName() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("name")
}

func (x *SdkSchedulePolicy) SetName(v string) { set(x.m, "name", v) }

func (x *SdkSchedulePolicy) GetSchedules() []*SdkSchedulePolicyInterval {
	if x == nil {
		return nil
	}
	return wrapList(x.m.GetMessages("schedules"), wrapSchedulePolicyInterval)
}

func (x *SdkSchedulePolicy) SetSchedules(v []*SdkSchedulePolicyInterval) {
	setList(x.m, "schedules", v)
}
