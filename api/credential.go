package api

import (
	"github.com/anirudhraja/osdwire/message"
)

// CredentialTypeCase reports which provider a credential request carries.
// The values are the field numbers of the credential_type members.
type CredentialTypeCase int32

const (
	CredentialTypeNotSet CredentialTypeCase = 0
	CredentialTypeAws    CredentialTypeCase = 200
	CredentialTypeAzure  CredentialTypeCase = 201
	CredentialTypeGoogle CredentialTypeCase = 202
)

type SdkAwsCredentialRequest struct{ m *message.Message }

func NewSdkAwsCredentialRequest() *SdkAwsCredentialRequest {
	return &SdkAwsCredentialRequest{m: mustNew("SdkAwsCredentialRequest")}
}

func (x *SdkAwsCredentialRequest) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkAwsCredentialRequest) GetAccessKey() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("access_key")
}

func (x *SdkAwsCredentialRequest) SetAccessKey(v string) { set(x.m, "access_key", v) }

func (x *SdkAwsCredentialRequest) GetSecretKey() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("secret_key")
}

func (x *SdkAwsCredentialRequest) SetSecretKey(v string) { set(x.m, "secret_key", v) }

func (x *SdkAwsCredentialRequest) GetEndpoint() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("endpoint")
}

func (x *SdkAwsCredentialRequest) SetEndpoint(v string) { set(x.m, "endpoint", v) }

func (x *SdkAwsCredentialRequest) GetRegion() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("region")
}

func (x *SdkAwsCredentialRequest) SetRegion(v string) { set(x.m, "region", v) }

func (x *SdkAwsCredentialRequest) GetDisableSsl() bool {
	if x == nil {
		return false
	}
	return x.m.GetBool("disable_ssl")
}

func (x *SdkAwsCredentialRequest) SetDisableSsl(v bool) { set(x.m, "disable_ssl", v) }

type SdkAzureCredentialRequest struct{ m *message.Message }

func NewSdkAzureCredentialRequest() *SdkAzureCredentialRequest {
	return &SdkAzureCredentialRequest{m: mustNew("SdkAzureCredentialRequest")}
}

func (x *SdkAzureCredentialRequest) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkAzureCredentialRequest) GetAccountName() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("account_name")
}

func (x *SdkAzureCredentialRequest) SetAccountName(v string) { set(x.m, "account_name", v) }

func (x *SdkAzureCredentialRequest) GetAccountKey() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("account_key")
}

func (x *SdkAzureCredentialRequest) SetAccountKey(v string) { set(x.m, "account_key", v) }

type SdkGoogleCredentialRequest struct{ m *message.Message }

func NewSdkGoogleCredentialRequest() *SdkGoogleCredentialRequest {
	return &SdkGoogleCredentialRequest{m: mustNew("SdkGoogleCredentialRequest")}
}

func (x *SdkGoogleCredentialRequest) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkGoogleCredentialRequest) GetProjectId() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("project_id")
}

func (x *SdkGoogleCredentialRequest) SetProjectId(v string) { set(x.m, "project_id", v) }

func (x *SdkGoogleCredentialRequest) GetJsonKey() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("json_key")
}

func (x *SdkGoogleCredentialRequest) SetJsonKey(v string) { set(x.m, "json_key", v) }

// SdkCredentialCreateRequest creates a credential for one cloud provider.
// Setting one provider replaces any other.
type SdkCredentialCreateRequest struct{ m *message.Message }

func NewSdkCredentialCreateRequest() *SdkCredentialCreateRequest {
	return &SdkCredentialCreateRequest{m: mustNew("SdkCredentialCreateRequest")}
}

func (x *SdkCredentialCreateRequest) Dynamic() *message.Message {
	if x == nil {
		return nil
	}
	return x.m
}

func (x *SdkCredentialCreateRequest) GetName() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("name")
}

func (x *SdkCredentialCreateRequest) SetName(v string) { set(x.m, "name", v) }

func (x *SdkCredentialCreateRequest) GetBucket() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("bucket")
}

func (x *SdkCredentialCreateRequest) SetBucket(v string) { set(x.m, "bucket", v) }

func (x *SdkCredentialCreateRequest) GetEncryptionKey() string {
	if x == nil {
		return ""
	}
	return x.m.GetString("encryption_key")
}

func (x *SdkCredentialCreateRequest) SetEncryptionKey(v string) { set(x.m, "encryption_key", v) }

func (x *SdkCredentialCreateRequest) GetCredentialTypeCase() CredentialTypeCase {
	if x == nil {
		return CredentialTypeNotSet
	}
	f := x.m.WhichOneof("credential_type")
	if f == nil {
		return CredentialTypeNotSet
	}
	return CredentialTypeCase(f.Number)
}

func (x *SdkCredentialCreateRequest) ClearCredentialType() {
	for _, name := range []string{"aws_credential", "azure_credential", "google_credential"} {
		x.m.Clear(name)
	}
}

func (x *SdkCredentialCreateRequest) GetAwsCredential() *SdkAwsCredentialRequest {
	if x == nil {
		return nil
	}
	if m := x.m.GetMessage("aws_credential"); m != nil {
		return &SdkAwsCredentialRequest{m: m}
	}
	return nil
}

func (x *SdkCredentialCreateRequest) SetAwsCredential(v *SdkAwsCredentialRequest) {
	setMessage(x.m, "aws_credential", v)
}

func (x *SdkCredentialCreateRequest) GetAzureCredential() *SdkAzureCredentialRequest {
	if x == nil {
		return nil
	}
	if m := x.m.GetMessage("azure_credential"); m != nil {
		return &SdkAzureCredentialRequest{m: m}
	}
	return nil
}

func (x *SdkCredentialCreateRequest) SetAzureCredential(v *SdkAzureCredentialRequest) {
	setMessage(x.m, "azure_credential", v)
}

func (x *SdkCredentialCreateRequest) GetGoogleCredential() *SdkGoogleCredentialRequest {
	if x == nil {
		return nil
	}
	if m := x.m.GetMessage("google_credential"); m != nil {
		return &SdkGoogleCredentialRequest{m: m}
	}
	return nil
}

func (x *SdkCredentialCreateRequest) SetGoogleCredential(v *SdkGoogleCredentialRequest) {
	setMessage(x.m, "google_credential", v)
}
