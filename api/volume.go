package api

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/anirudhraja/osdwire/message"
)

// Source is the origin of a volume: a parent volume or a seed URI.
type Source struct{ m *message.Message }

func NewSource() *Source { return &Source{m: mustNew("Source")} }

func (x *Source) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *Source) GetParent() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("parent")
}

func (x *Source) SetParent(v string) { set(x.m, "parent", v) }

func (x *Source) GetSeed() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("seed")
}

func (x *Source) SetSeed(v string) { set(x.m, "seed", v) }

// Group is a consistency group identifier.
type Group struct{ m *message.Message }

func NewGroup() *Group { return &Group{m: mustNew("Group")} }

func (x *Group) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *Group) GetId() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("id")
}

func (x *Group) SetId(v string) { set(x.m, "id", v) }

func wrapGroup(m *message.Message) *Group {
	if m == nil {
		return nil
	}
	return &Group{m: m}
}

// ReplicaSet lists the nodes holding a copy of a volume.
type ReplicaSet struct{ m *message.Message }

func NewReplicaSet() *ReplicaSet { return &ReplicaSet{m: mustNew("ReplicaSet")} }

func (x *ReplicaSet) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *ReplicaSet) GetNodes() []string {
	if x == nil {
		return nil
	}
	return x.m.GetStrings("nodes")
}

func (x *ReplicaSet) SetNodes(v []string) { setStrings(x.m, "nodes", v) }

func (x *ReplicaSet) GetPoolUuids() []string {
	if x == nil {
		return nil
	}
	return x.m.GetStrings("pool_uuids")
}

func (x *ReplicaSet) SetPoolUuids(v []string) { setStrings(x.m, "pool_uuids", v) }

func wrapReplicaSet(m *message.Message) *ReplicaSet {
	if m == nil {
		return nil
	}
	return &ReplicaSet{m: m}
}

// VolumeLocator is a user friendly name and label set for a volume.
type VolumeLocator struct{ m *message.Message }

func NewVolumeLocator() *VolumeLocator { return &VolumeLocator{m: mustNew("VolumeLocator")} }

func (x *VolumeLocator) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *VolumeLocator) GetName() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("name")
}

func (x *VolumeLocator) SetName(v string) { set(x.m, "name", v) }

func (x *VolumeLocator) GetVolumeLabels() map[string]string {
	if x == nil {
		return nil
	}
	return x.m.GetStringMap("volume_labels")
}

func (x *VolumeLocator) SetVolumeLabels(v map[string]string) {
	setStringMap(x.m, "volume_labels", v)
}

// VolumeSpec has the properties needed to create a volume.
type VolumeSpec struct{ m *message.Message }

func NewVolumeSpec() *VolumeSpec { return &VolumeSpec{m: mustNew("VolumeSpec")} }

func (x *VolumeSpec) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *VolumeSpec) GetEphemeral() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("ephemeral")
}

func (x *VolumeSpec) SetEphemeral(v bool) { set(x.m, "ephemeral", v) }

func (x *VolumeSpec) GetSize() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("size")
}

func (x *VolumeSpec) SetSize(v uint64) { set(x.m, "size", v) }

func (x *VolumeSpec) GetFormat() FSType {
	if x == nil {
		return FSType_FS_TYPE_NONE
	}
	return FSType(x.m.GetEnum("format"))
}

func (x *VolumeSpec) SetFormat(v FSType) { set(x.m, "format", v) }

func (x *VolumeSpec) GetBlockSize() int64 {
	if x == nil {
		return 0
	}
	return x.m.GetInt64("block_size")
}

func (x *VolumeSpec) SetBlockSize(v int64) { set(x.m, "block_size", v) }

func (x *VolumeSpec) GetHaLevel() int64 {
	if x == nil {
		return 0
	}
	return x.m.GetInt64("ha_level")
}

func (x *VolumeSpec) SetHaLevel(v int64) { set(x.m, "ha_level", v) }

func (x *VolumeSpec) GetCos() CosType {
	if x == nil {
		return CosType_NONE
	}
	return CosType(x.m.GetEnum("cos"))
}

func (x *VolumeSpec) SetCos(v CosType) { set(x.m, "cos", v) }

func (x *VolumeSpec) GetIoProfile() IoProfile {
	if x == nil {
		return IoProfile_IO_PROFILE_SEQUENTIAL
	}
	return IoProfile(x.m.GetEnum("io_profile"))
}

func (x *VolumeSpec) SetIoProfile(v IoProfile) { set(x.m, "io_profile", v) }

func (x *VolumeSpec) GetDedupe() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("dedupe")
}

func (x *VolumeSpec) SetDedupe(v bool) { set(x.m, "dedupe", v) }

func (x *VolumeSpec) GetSnapshotInterval() uint32 {
	if x == nil {
		return 0
	}
	return x.m.GetUint32("snapshot_interval")
}

func (x *VolumeSpec) SetSnapshotInterval(v uint32) { set(x.m, "snapshot_interval", v) }

func (x *VolumeSpec) GetVolumeLabels() map[string]string {
	if x == nil {
		return nil
	}
	return x.m.GetStringMap("volume_labels")
}

func (x *VolumeSpec) SetVolumeLabels(v map[string]string) { setStringMap(x.m, "volume_labels", v) }

func (x *VolumeSpec) GetShared() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("shared")
}

func (x *VolumeSpec) SetShared(v bool) { set(x.m, "shared", v) }

// GetReplicaSet returns nil when no replica set was given.
func (x *VolumeSpec) GetReplicaSet() *ReplicaSet {
	if x == nil {
		return nil
	}
	return wrapReplicaSet(x.m.GetMessage("replica_set"))
}

func (x *VolumeSpec) HasReplicaSet() bool { return x != nil && x.m.Has("replica_set") }

func (x *VolumeSpec) SetReplicaSet(v *ReplicaSet) { setMessage(x.m, "replica_set", v) }

func (x *VolumeSpec) GetAggregationLevel() uint32 {
	if x == nil {
		return 0
	}
	return x.m.GetUint32("aggregation_level")
}

func (x *VolumeSpec) SetAggregationLevel(v uint32) { set(x.m, "aggregation_level", v) }

func (x *VolumeSpec) GetEncrypted() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("encrypted")
}

func (x *VolumeSpec) SetEncrypted(v bool) { set(x.m, "encrypted", v) }

func (x *VolumeSpec) GetPassphrase() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("passphrase")
}

func (x *VolumeSpec) SetPassphrase(v string) { set(x.m, "passphrase", v) }

func (x *VolumeSpec) GetSnapshotSchedule() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("snapshot_schedule")
}

func (x *VolumeSpec) SetSnapshotSchedule(v string) { set(x.m, "snapshot_schedule", v) }

func (x *VolumeSpec) GetScale() uint32 {
	if x == nil {
		return 0
	}
	return x.m.GetUint32("scale")
}

func (x *VolumeSpec) SetScale(v uint32) { set(x.m, "scale", v) }

func (x *VolumeSpec) GetSticky() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("sticky")
}

func (x *VolumeSpec) SetSticky(v bool) { set(x.m, "sticky", v) }

func (x *VolumeSpec) GetGroup() *Group {
	if x == nil {
		return nil
	}
	return wrapGroup(x.m.GetMessage("group"))
}

func (x *VolumeSpec) SetGroup(v *Group) { setMessage(x.m, "group", v) }

func (x *VolumeSpec) GetGroupEnforced() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("group_enforced")
}

func (x *VolumeSpec) SetGroupEnforced(v bool) { set(x.m, "group_enforced", v) }

func (x *VolumeSpec) GetCompressed() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("compressed")
}

func (x *VolumeSpec) SetCompressed(v bool) { set(x.m, "compressed", v) }

func (x *VolumeSpec) GetCascaded() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("cascaded")
}

func (x *VolumeSpec) SetCascaded(v bool) { set(x.m, "cascaded", v) }

func (x *VolumeSpec) GetJournal() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("journal")
}

func (x *VolumeSpec) SetJournal(v bool) { set(x.m, "journal", v) }

func (x *VolumeSpec) GetSharedv4() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("sharedv4")
}

func (x *VolumeSpec) SetSharedv4(v bool) { set(x.m, "sharedv4", v) }

func (x *VolumeSpec) GetQueueDepth() uint32 {
	if x == nil {
		return 0
	}
	return x.m.GetUint32("queue_depth")
}

func (x *VolumeSpec) SetQueueDepth(v uint32) { set(x.m, "queue_depth", v) }

func wrapVolumeSpec(m *message.Message) *VolumeSpec {
	if m == nil {
		return nil
	}
	return &VolumeSpec{m: m}
}

// VolumeSpecUpdate carries the subset of a VolumeSpec to change. Each option
// is explicitly present or absent, so setting an option to its zero value
// still changes it.
type VolumeSpecUpdate struct{ m *message.Message }

func NewVolumeSpecUpdate() *VolumeSpecUpdate {
	return &VolumeSpecUpdate{m: mustNew("VolumeSpecUpdate")}
}

func (x *VolumeSpecUpdate) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *VolumeSpecUpdate) has(name string) bool { return x != nil && x.m.Has(name) }

func (x *VolumeSpecUpdate) HasEphemeral() bool { return x.has("ephemeral") }

func (x *VolumeSpecUpdate) GetEphemeral() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("ephemeral")
}

func (x *VolumeSpecUpdate) SetEphemeral(v bool) { set(x.m, "ephemeral", v) }
func (x *VolumeSpecUpdate) ClearEphemeral()     { x.m.Clear("ephemeral") }

func (x *VolumeSpecUpdate) HasSize() bool { return x.has("size") }

func (x *VolumeSpecUpdate) GetSize() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("size")
}

func (x *VolumeSpecUpdate) SetSize(v uint64) { set(x.m, "size", v) }
func (x *VolumeSpecUpdate) ClearSize()       { x.m.Clear("size") }

func (x *VolumeSpecUpdate) HasFormat() bool { return x.has("format") }

func (x *VolumeSpecUpdate) GetFormat() FSType {
	if x == nil {
		return FSType_FS_TYPE_NONE
	}
	return FSType(x.m.GetEnum("format"))
}

func (x *VolumeSpecUpdate) SetFormat(v FSType) { set(x.m, "format", v) }
func (x *VolumeSpecUpdate) ClearFormat()       { x.m.Clear("format") }

func (x *VolumeSpecUpdate) HasHaLevel() bool { return x.has("ha_level") }

func (x *VolumeSpecUpdate) GetHaLevel() int64 {
	if x == nil {
		return 0
	}
	return x.m.GetInt64("ha_level")
}

func (x *VolumeSpecUpdate) SetHaLevel(v int64) { set(x.m, "ha_level", v) }
func (x *VolumeSpecUpdate) ClearHaLevel()      { x.m.Clear("ha_level") }

func (x *VolumeSpecUpdate) HasCos() bool { return x.has("cos") }

func (x *VolumeSpecUpdate) GetCos() CosType {
	if x == nil {
		return CosType_NONE
	}
	return CosType(x.m.GetEnum("cos"))
}

func (x *VolumeSpecUpdate) SetCos(v CosType) { set(x.m, "cos", v) }
func (x *VolumeSpecUpdate) ClearCos()        { x.m.Clear("cos") }

func (x *VolumeSpecUpdate) HasIoProfile() bool { return x.has("io_profile") }

func (x *VolumeSpecUpdate) GetIoProfile() IoProfile {
	if x == nil {
		return IoProfile_IO_PROFILE_SEQUENTIAL
	}
	return IoProfile(x.m.GetEnum("io_profile"))
}

func (x *VolumeSpecUpdate) SetIoProfile(v IoProfile) { set(x.m, "io_profile", v) }
func (x *VolumeSpecUpdate) ClearIoProfile()          { x.m.Clear("io_profile") }

func (x *VolumeSpecUpdate) HasDedupe() bool { return x.has("dedupe") }

func (x *VolumeSpecUpdate) GetDedupe() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("dedupe")
}

func (x *VolumeSpecUpdate) SetDedupe(v bool) { set(x.m, "dedupe", v) }
func (x *VolumeSpecUpdate) ClearDedupe()     { x.m.Clear("dedupe") }

func (x *VolumeSpecUpdate) HasSnapshotInterval() bool { return x.has("snapshot_interval") }

func (x *VolumeSpecUpdate) GetSnapshotInterval() uint32 {
	if x == nil {
		return 0
	}
	return x.m.GetUint32("snapshot_interval")
}

func (x *VolumeSpecUpdate) SetSnapshotInterval(v uint32) { set(x.m, "snapshot_interval", v) }
func (x *VolumeSpecUpdate) ClearSnapshotInterval()       { x.m.Clear("snapshot_interval") }

func (x *VolumeSpecUpdate) GetVolumeLabels() map[string]string {
	if x == nil {
		return nil
	}
	return x.m.GetStringMap("volume_labels")
}

func (x *VolumeSpecUpdate) SetVolumeLabels(v map[string]string) {
	setStringMap(x.m, "volume_labels", v)
}

func (x *VolumeSpecUpdate) HasShared() bool { return x.has("shared") }

func (x *VolumeSpecUpdate) GetShared() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("shared")
}

func (x *VolumeSpecUpdate) SetShared(v bool) { set(x.m, "shared", v) }
func (x *VolumeSpecUpdate) ClearShared()     { x.m.Clear("shared") }

func (x *VolumeSpecUpdate) GetReplicaSet() *ReplicaSet {
	if x == nil {
		return nil
	}
	return wrapReplicaSet(x.m.GetMessage("replica_set"))
}

func (x *VolumeSpecUpdate) SetReplicaSet(v *ReplicaSet) { setMessage(x.m, "replica_set", v) }

func (x *VolumeSpecUpdate) HasPassphrase() bool { return x.has("passphrase") }

func (x *VolumeSpecUpdate) GetPassphrase() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("passphrase")
}

func (x *VolumeSpecUpdate) SetPassphrase(v string) { set(x.m, "passphrase", v) }
func (x *VolumeSpecUpdate) ClearPassphrase()       { x.m.Clear("passphrase") }

func (x *VolumeSpecUpdate) HasSnapshotSchedule() bool { return x.has("snapshot_schedule") }

func (x *VolumeSpecUpdate) GetSnapshotSchedule() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("snapshot_schedule")
}

func (x *VolumeSpecUpdate) SetSnapshotSchedule(v string) { set(x.m, "snapshot_schedule", v) }
func (x *VolumeSpecUpdate) ClearSnapshotSchedule()       { x.m.Clear("snapshot_schedule") }

func (x *VolumeSpecUpdate) HasScale() bool { return x.has("scale") }

func (x *VolumeSpecUpdate) GetScale() uint32 {
	if x == nil {
		return 0
	}
	return x.m.GetUint32("scale")
}

func (x *VolumeSpecUpdate) SetScale(v uint32) { set(x.m, "scale", v) }
func (x *VolumeSpecUpdate) ClearScale()       { x.m.Clear("scale") }

func (x *VolumeSpecUpdate) HasSticky() bool { return x.has("sticky") }

func (x *VolumeSpecUpdate) GetSticky() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("sticky")
}

func (x *VolumeSpecUpdate) SetSticky(v bool) { set(x.m, "sticky", v) }
func (x *VolumeSpecUpdate) ClearSticky()     { x.m.Clear("sticky") }

func (x *VolumeSpecUpdate) GetGroup() *Group {
	if x == nil {
		return nil
	}
	return wrapGroup(x.m.GetMessage("group"))
}

func (x *VolumeSpecUpdate) SetGroup(v *Group) { setMessage(x.m, "group", v) }

func (x *VolumeSpecUpdate) HasJournal() bool { return x.has("journal") }

func (x *VolumeSpecUpdate) GetJournal() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("journal")
}

func (x *VolumeSpecUpdate) SetJournal(v bool) { set(x.m, "journal", v) }
func (x *VolumeSpecUpdate) ClearJournal()     { x.m.Clear("journal") }

func (x *VolumeSpecUpdate) HasSharedv4() bool { return x.has("sharedv4") }

func (x *VolumeSpecUpdate) GetSharedv4() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("sharedv4")
}

func (x *VolumeSpecUpdate) SetSharedv4(v bool) { set(x.m, "sharedv4", v) }
func (x *VolumeSpecUpdate) ClearSharedv4()     { x.m.Clear("sharedv4") }

func (x *VolumeSpecUpdate) HasQueueDepth() bool { return x.has("queue_depth") }

func (x *VolumeSpecUpdate) GetQueueDepth() uint32 {
	if x == nil {
		return 0
	}
	return x.m.GetUint32("queue_depth")
}

func (x *VolumeSpecUpdate) SetQueueDepth(v uint32) { set(x.m, "queue_depth", v) }
func (x *VolumeSpecUpdate) ClearQueueDepth()       { x.m.Clear("queue_depth") }

// Volume represents an abstract storage volume.
type Volume struct{ m *message.Message }

func NewVolume() *Volume { return &Volume{m: mustNew("Volume")} }

func (x *Volume) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *Volume) GetId() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("id")
}

func (x *Volume) SetId(v string) { set(x.m, "id", v) }

func (x *Volume) GetSource() *Source {
	if x == nil {
		return nil
	}
	if m := x.m.GetMessage("source"); m != nil {
		return &Source{m: m}
	}
	return nil
}

func (x *Volume) SetSource(v *Source) { setMessage(x.m, "source", v) }

func (x *Volume) GetGroup() *Group {
	if x == nil {
		return nil
	}
	return wrapGroup(x.m.GetMessage("group"))
}

func (x *Volume) SetGroup(v *Group) { setMessage(x.m, "group", v) }

func (x *Volume) GetReadonly() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("readonly")
}

func (x *Volume) SetReadonly(v bool) { set(x.m, "readonly", v) }

func (x *Volume) GetLocator() *VolumeLocator {
	if x == nil {
		return nil
	}
	if m := x.m.GetMessage("locator"); m != nil {
		return &VolumeLocator{m: m}
	}
	return nil
}

func (x *Volume) SetLocator(v *VolumeLocator) { setMessage(x.m, "locator", v) }

func (x *Volume) GetCtime() *timestamppb.Timestamp {
	if x == nil {
		return nil
	}
	return getTimestamp(x.m, "ctime")
}

func (x *Volume) SetCtime(v *timestamppb.Timestamp) { setTimestamp(x.m, "ctime", v) }

func (x *Volume) GetSpec() *VolumeSpec {
	if x == nil {
		return nil
	}
	return wrapVolumeSpec(x.m.GetMessage("spec"))
}

func (x *Volume) SetSpec(v *VolumeSpec) { setMessage(x.m, "spec", v) }

func (x *Volume) GetUsage() uint64 {
	if x == nil {
		return 0
	}
	return x.m.GetUint64("usage")
}

func (x *Volume) SetUsage(v uint64) { set(x.m, "usage", v) }

func (x *Volume) GetLastScan() *timestamppb.Timestamp {
	if x == nil {
		return nil
	}
	return getTimestamp(x.m, "last_scan")
}

func (x *Volume) SetLastScan(v *timestamppb.Timestamp) { setTimestamp(x.m, "last_scan", v) }

func (x *Volume) GetFormat() FSType {
	if x == nil {
		return FSType_FS_TYPE_NONE
	}
	return FSType(x.m.GetEnum("format"))
}

func (x *Volume) SetFormat(v FSType) { set(x.m, "format", v) }

func (x *Volume) GetStatus() VolumeStatus {
	if x == nil {
		return VolumeStatus_VOLUME_STATUS_NONE
	}
	return VolumeStatus(x.m.GetEnum("status"))
}

func (x *Volume) SetStatus(v VolumeStatus) { set(x.m, "status", v) }

func (x *Volume) GetState() VolumeState {
	if x == nil {
		return VolumeState_VOLUME_STATE_NONE
	}
	return VolumeState(x.m.GetEnum("state"))
}

func (x *Volume) SetState(v VolumeState) { set(x.m, "state", v) }

func (x *Volume) GetAttachedOn() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("attached_on")
}

func (x *Volume) SetAttachedOn(v string) { set(x.m, "attached_on", v) }

func (x *Volume) GetAttachedState() AttachState {
	if x == nil {
		return AttachState_ATTACH_STATE_EXTERNAL
	}
	return AttachState(x.m.GetEnum("attached_state"))
}

func (x *Volume) SetAttachedState(v AttachState) { set(x.m, "attached_state", v) }

func (x *Volume) GetDevicePath() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("device_path")
}

func (x *Volume) SetDevicePath(v string) { set(x.m, "device_path", v) }

func (x *Volume) GetAttachPath() []string {
	if x == nil {
		return nil
	}
	return x.m.GetStrings("attach_path")
}

func (x *Volume) SetAttachPath(v []string) { setStrings(x.m, "attach_path", v) }

func (x *Volume) GetAttachInfo() map[string]string {
	if x == nil {
		return nil
	}
	return x.m.GetStringMap("attach_info")
}

func (x *Volume) SetAttachInfo(v map[string]string) { setStringMap(x.m, "attach_info", v) }

func (x *Volume) GetReplicaSets() []*ReplicaSet {
	if x == nil {
		return nil
	}
	return wrapList(x.m.GetMessages("replica_sets"), wrapReplicaSet)
}

func (x *Volume) SetReplicaSets(v []*ReplicaSet) { setList(x.m, "replica_sets", v) }

func (x *Volume) GetError() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("error")
}

func (x *Volume) SetError(v string) { set(x.m, "error", v) }
