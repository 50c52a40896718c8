// Package settings defines the settings document of ibupdater: global update
// parameters and the list of 1C information bases to update.
//
// The document is stored as settings.xml in the working directory. Its
// schema is compatible with files produced by the previous .NET generation
// of the updater.
//
// Some fields are derived and never stored: information base Mode, FilePath
// and ID are functions of its connection string, LogFilePath depends on the
// working directory. They are filled by the validator in internal/iosettings.
package settings

import (
	"github.com/gnames/ibupdater/pkg/connstr"
)

// Manager loads and validates the settings document.
type Manager interface {
	// Load reads the settings document. If it does not exist, a template is
	// written instead and an error with SettingsFileCreatedError code is
	// returned.
	Load() (*Settings, error)

	// Validate checks the document against the file system and returns
	// its copy with all derived fields populated. The argument is not
	// modified.
	Validate(s *Settings) (*Settings, error)
}

// Settings is the settings document.
type Settings struct {
	// BackupsDirectory is where backups of information bases are kept.
	// Optional, created during validation if it does not exist.
	BackupsDirectory string `xml:"BackupsDirectory" yaml:"backups_directory" json:"backupsDirectory"`

	// TemplatesDirectory contains update templates (...\tmplts).
	// Required, must exist.
	TemplatesDirectory string `xml:"TemplatesDirectory" yaml:"templates_directory" json:"templatesDirectory"`

	// OverwriteLogFile removes the previous log file on start.
	OverwriteLogFile bool `xml:"OverwriteLogFile" yaml:"overwrite_log_file" json:"overwriteLogFile"`

	// Bases is the ordered list of information bases to update.
	Bases []InfoBase `xml:"Bases1C>Base1C" yaml:"bases" json:"bases"`

	// LogFilePath is the updater log file. Derived from the working
	// directory.
	LogFilePath string `xml:"-" yaml:"log_file_path" json:"logFilePath"`
}

// InfoBase describes one 1C information base.
type InfoBase struct {
	// Description is a human-readable name used in messages.
	Description string `xml:"Description" yaml:"description" json:"description"`

	// ConnectionString tells how to connect to the base, for example
	// `File="D:\DB\base1";` or `Srvr="localhost";Ref="Accounting";`.
	ConnectionString string `xml:"IBConnectionString" yaml:"connection_string" json:"connectionString"`

	// PlatformVersion restricts 1C platform version. Empty means the latest
	// installed one, "8.2" the latest of 8.2, "8.2.19.63" exact release.
	PlatformVersion string `xml:"PlatformVersion" yaml:"platform_version" json:"platformVersion"`

	// ClusterAdminLogin is used for server information bases only.
	ClusterAdminLogin string `xml:"ClusterAdministratorLogin" yaml:"cluster_admin_login" json:"clusterAdminLogin"`

	// ClusterAdminPassword is used for server information bases only.
	ClusterAdminPassword string `xml:"ClusterAdministratorPassword" yaml:"cluster_admin_password" json:"clusterAdminPassword"`

	Login    string `xml:"Login" yaml:"login" json:"login"`
	Password string `xml:"Password" yaml:"password" json:"password"`

	// BackupsCount is the number of rotated backups to keep.
	BackupsCount int `xml:"BackupsCount" yaml:"backups_count" json:"backupsCount"`

	RunUserModeAfterEveryUpdate bool `xml:"RunUserModeAfterEveryUpdate" yaml:"run_user_mode_after_every_update" json:"runUserModeAfterEveryUpdate"`
	EnableScheduledJobs         bool `xml:"EnableScheduledJobs" yaml:"enable_scheduled_jobs" json:"enableScheduledJobs"`

	// Mode is derived from ConnectionString.
	Mode connstr.Mode `xml:"-" yaml:"mode" json:"mode"`

	// FilePath is the directory of a file information base, derived from
	// ConnectionString. Empty for server bases.
	FilePath string `xml:"-" yaml:"file_path" json:"filePath"`

	// ID is a UUID v5 of ConnectionString. It stays the same between runs
	// and can be used to name per-base backup directories.
	ID string `xml:"-" yaml:"id" json:"id"`
}

// IsServer returns true for information bases accessed through a cluster.
func (b InfoBase) IsServer() bool {
	return b.Mode == connstr.Server
}

// Clone returns a deep copy of the document.
func (s *Settings) Clone() *Settings {
	res := *s
	if s.Bases != nil {
		res.Bases = make([]InfoBase, len(s.Bases))
		copy(res.Bases, s.Bases)
	}
	return &res
}

// Masked returns a copy of the document with passwords replaced by
// asterisks. It is used for printing settings.
func (s *Settings) Masked() *Settings {
	res := s.Clone()
	for i := range res.Bases {
		res.Bases[i].Password = mask(res.Bases[i].Password)
		res.Bases[i].ClusterAdminPassword = mask(res.Bases[i].ClusterAdminPassword)
	}
	return res
}

func mask(s string) string {
	if s == "" {
		return s
	}
	return "********"
}
