package api

import "strconv"

// enumName returns the declared name of n in the named enum, or the number
// itself when it has no declared value.
func enumName(enum string, n int32) string {
	if e, err := Registry().GetEnum(FullName(enum)); err == nil {
		if v := e.ValueByNumber(n); v != nil {
			return v.Name
		}
	}
	return strconv.Itoa(int(n))
}

type Status int32

const (
	Status_STATUS_NONE                     Status = 0
	Status_STATUS_INIT                     Status = 1
	Status_STATUS_OK                       Status = 2
	Status_STATUS_OFFLINE                  Status = 3
	Status_STATUS_ERROR                    Status = 4
	Status_STATUS_NOT_IN_QUORUM            Status = 5
	Status_STATUS_DECOMMISSION             Status = 6
	Status_STATUS_MAINTENANCE              Status = 7
	Status_STATUS_STORAGE_DOWN             Status = 8
	Status_STATUS_STORAGE_DEGRADED         Status = 9
	Status_STATUS_NEEDS_REBOOT             Status = 10
	Status_STATUS_STORAGE_REBALANCE        Status = 11
	Status_STATUS_STORAGE_DRIVE_REPLACE    Status = 12
	Status_STATUS_NOT_IN_QUORUM_NO_STORAGE Status = 13
	Status_STATUS_MAX                      Status = 14
)

func (x Status) String() string { return enumName("Status", int32(x)) }

type DriverType int32

const (
	DriverType_DRIVER_TYPE_NONE      DriverType = 0
	DriverType_DRIVER_TYPE_FILE      DriverType = 1
	DriverType_DRIVER_TYPE_BLOCK     DriverType = 2
	DriverType_DRIVER_TYPE_OBJECT    DriverType = 3
	DriverType_DRIVER_TYPE_CLUSTERED DriverType = 4
	DriverType_DRIVER_TYPE_GRAPH     DriverType = 5
)

func (x DriverType) String() string { return enumName("DriverType", int32(x)) }

type FSType int32

const (
	FSType_FS_TYPE_NONE  FSType = 0
	FSType_FS_TYPE_BTRFS FSType = 1
	FSType_FS_TYPE_EXT4  FSType = 2
	FSType_FS_TYPE_FUSE  FSType = 3
	FSType_FS_TYPE_NFS   FSType = 4
	FSType_FS_TYPE_VFS   FSType = 5
	FSType_FS_TYPE_XFS   FSType = 6
	FSType_FS_TYPE_ZFS   FSType = 7
	FSType_FS_TYPE_XFSv2 FSType = 8
)

func (x FSType) String() string { return enumName("FSType", int32(x)) }

type SeverityType int32

const (
	SeverityType_SEVERITY_TYPE_NONE    SeverityType = 0
	SeverityType_SEVERITY_TYPE_ALARM   SeverityType = 1
	SeverityType_SEVERITY_TYPE_WARNING SeverityType = 2
	SeverityType_SEVERITY_TYPE_NOTIFY  SeverityType = 3
)

func (x SeverityType) String() string { return enumName("SeverityType", int32(x)) }

type ResourceType int32

const (
	ResourceType_RESOURCE_TYPE_NONE    ResourceType = 0
	ResourceType_RESOURCE_TYPE_VOLUME  ResourceType = 1
	ResourceType_RESOURCE_TYPE_NODE    ResourceType = 2
	ResourceType_RESOURCE_TYPE_CLUSTER ResourceType = 3
	ResourceType_RESOURCE_TYPE_DRIVE   ResourceType = 4
)

func (x ResourceType) String() string { return enumName("ResourceType", int32(x)) }

type CosType int32

const (
	CosType_NONE   CosType = 0
	CosType_LOW    CosType = 1
	CosType_MEDIUM CosType = 2
	CosType_HIGH   CosType = 3
)

func (x CosType) String() string { return enumName("CosType", int32(x)) }

type IoProfile int32

const (
	IoProfile_IO_PROFILE_SEQUENTIAL IoProfile = 0
	IoProfile_IO_PROFILE_RANDOM     IoProfile = 1
	IoProfile_IO_PROFILE_DB         IoProfile = 2
	IoProfile_IO_PROFILE_DB_REMOTE  IoProfile = 3
	IoProfile_IO_PROFILE_CMS        IoProfile = 4
)

func (x IoProfile) String() string { return enumName("IoProfile", int32(x)) }

type VolumeState int32

const (
	VolumeState_VOLUME_STATE_NONE          VolumeState = 0
	VolumeState_VOLUME_STATE_PENDING       VolumeState = 1
	VolumeState_VOLUME_STATE_AVAILABLE     VolumeState = 2
	VolumeState_VOLUME_STATE_ATTACHED      VolumeState = 3
	VolumeState_VOLUME_STATE_DETACHED      VolumeState = 4
	VolumeState_VOLUME_STATE_DETATCHING    VolumeState = 5
	VolumeState_VOLUME_STATE_ERROR         VolumeState = 6
	VolumeState_VOLUME_STATE_DELETED       VolumeState = 7
	VolumeState_VOLUME_STATE_TRY_DETACHING VolumeState = 8
	VolumeState_VOLUME_STATE_RESTORE       VolumeState = 9
)

func (x VolumeState) String() string { return enumName("VolumeState", int32(x)) }

type VolumeStatus int32

const (
	VolumeStatus_VOLUME_STATUS_NONE        VolumeStatus = 0
	VolumeStatus_VOLUME_STATUS_NOT_PRESENT VolumeStatus = 1
	VolumeStatus_VOLUME_STATUS_UP          VolumeStatus = 2
	VolumeStatus_VOLUME_STATUS_DOWN        VolumeStatus = 3
	VolumeStatus_VOLUME_STATUS_DEGRADED    VolumeStatus = 4
)

func (x VolumeStatus) String() string { return enumName("VolumeStatus", int32(x)) }

type StorageMedium int32

const (
	StorageMedium_STORAGE_MEDIUM_MAGNETIC StorageMedium = 0
	StorageMedium_STORAGE_MEDIUM_SSD      StorageMedium = 1
	StorageMedium_STORAGE_MEDIUM_NVME     StorageMedium = 2
)

func (x StorageMedium) String() string { return enumName("StorageMedium", int32(x)) }

type AttachState int32

const (
	AttachState_ATTACH_STATE_EXTERNAL        AttachState = 0
	AttachState_ATTACH_STATE_INTERNAL        AttachState = 1
	AttachState_ATTACH_STATE_INTERNAL_SWITCH AttachState = 2
)

func (x AttachState) String() string { return enumName("AttachState", int32(x)) }

type HardwareType int32

const (
	HardwareType_UnknownMachine   HardwareType = 0
	HardwareType_VirtualMachine   HardwareType = 1
	HardwareType_BareMetalMachine HardwareType = 2
)

func (x HardwareType) String() string { return enumName("HardwareType", int32(x)) }

type SdkTimeWeekday int32

const (
	SdkTimeWeekday_SdkTimeWeekdaySunday    SdkTimeWeekday = 0
	SdkTimeWeekday_SdkTimeWeekdayMonday    SdkTimeWeekday = 1
	SdkTimeWeekday_SdkTimeWeekdayTuesday   SdkTimeWeekday = 2
	SdkTimeWeekday_SdkTimeWeekdayWednesday SdkTimeWeekday = 3
	SdkTimeWeekday_SdkTimeWeekdayThursday  SdkTimeWeekday = 4
	SdkTimeWeekday_SdkTimeWeekdayFriday    SdkTimeWeekday = 5
	SdkTimeWeekday_SdkTimeWeekdaySaturday  SdkTimeWeekday = 6
)

func (x SdkTimeWeekday) String() string { return enumName("SdkTimeWeekday", int32(x)) }

type SdkCloudBackupStatusType int32

const (
	SdkCloudBackupStatusType_SdkCloudBackupStatusTypeUnknown    SdkCloudBackupStatusType = 0
	SdkCloudBackupStatusType_SdkCloudBackupStatusTypeNotStarted SdkCloudBackupStatusType = 1
	SdkCloudBackupStatusType_SdkCloudBackupStatusTypeDone       SdkCloudBackupStatusType = 2
	SdkCloudBackupStatusType_SdkCloudBackupStatusTypeAborted    SdkCloudBackupStatusType = 3
	SdkCloudBackupStatusType_SdkCloudBackupStatusTypePaused     SdkCloudBackupStatusType = 4
	SdkCloudBackupStatusType_SdkCloudBackupStatusTypeStopped    SdkCloudBackupStatusType = 5
	SdkCloudBackupStatusType_SdkCloudBackupStatusTypeActive     SdkCloudBackupStatusType = 6
	SdkCloudBackupStatusType_SdkCloudBackupStatusTypeFailed     SdkCloudBackupStatusType = 7
)

func (x SdkCloudBackupStatusType) String() string {
	return enumName("SdkCloudBackupStatusType", int32(x))
}
