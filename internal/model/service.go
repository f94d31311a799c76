package model

import "fmt"

// ServiceKind identifies a scoring check type. The set is closed; the
// per-kind field rules live in the convert package's rule table.
type ServiceKind string

const (
	KindDNS           ServiceKind = "dns"
	KindDocker        ServiceKind = "docker"
	KindElasticsearch ServiceKind = "elasticsearch"
	KindFTP           ServiceKind = "ftp"
	KindHTTP          ServiceKind = "http"
	KindHTTPS         ServiceKind = "https"
	KindICMP          ServiceKind = "icmp"
	KindIMAP          ServiceKind = "imap"
	KindIMAPS         ServiceKind = "imaps"
	KindLDAP          ServiceKind = "ldap"
	KindMSSQL         ServiceKind = "mssql"
	KindMySQL         ServiceKind = "mysql"
	KindNFS           ServiceKind = "nfs"
	KindPOP3          ServiceKind = "pop3"
	KindPOP3S         ServiceKind = "pop3s"
	KindPostgreSQL    ServiceKind = "postgresql"
	KindRDP           ServiceKind = "rdp"
	KindSMB           ServiceKind = "smb"
	KindSMTP          ServiceKind = "smtp"
	KindSMTPS         ServiceKind = "smtps"
	KindSSH           ServiceKind = "ssh"
	KindVNC           ServiceKind = "vnc"
	KindWinRM         ServiceKind = "winrm"
	KindWordpress     ServiceKind = "wordpress"
)

// Kinds lists every service kind in a stable order.
func Kinds() []ServiceKind {
	return []ServiceKind{
		KindDNS, KindDocker, KindElasticsearch, KindFTP, KindHTTP, KindHTTPS,
		KindICMP, KindIMAP, KindIMAPS, KindLDAP, KindMSSQL, KindMySQL,
		KindNFS, KindPOP3, KindPOP3S, KindPostgreSQL, KindRDP, KindSMB,
		KindSMTP, KindSMTPS, KindSSH, KindVNC, KindWinRM, KindWordpress,
	}
}

// UnmarshalYAML rejects unknown service kinds at decode time.
func (k *ServiceKind) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	for _, known := range Kinds() {
		if ServiceKind(s) == known {
			*k = known
			return nil
		}
	}
	return fmt.Errorf("unknown service kind %q", s)
}

// CheckRecord describes one monitoring probe instance. It carries the union
// of all kind-specific fields; which fields a given kind reads is decided by
// the convert package's rule table, so unused fields are simply ignored.
type CheckRecord struct {
	MatchingContent string `yaml:"matching_content"`

	// DNS
	QType  string `yaml:"qtype,omitempty"`
	Domain string `yaml:"domain,omitempty"`

	// Elasticsearch
	Index string `yaml:"index,omitempty"`

	// FTP, NFS, SMB
	File string `yaml:"file,omitempty"`

	// HTTP, HTTPS, Wordpress
	UserAgent string `yaml:"user_agent,omitempty"`
	Vhost     string `yaml:"vhost,omitempty"`
	URI       string `yaml:"uri,omitempty"`

	// IMAP, IMAPS, POP3, POP3S
	Mailbox string `yaml:"mailbox,omitempty"`

	// LDAP
	BaseDN string `yaml:"base_dn,omitempty"`
	Filter string `yaml:"filter,omitempty"`

	// MSSQL, MySQL, PostgreSQL
	Database string `yaml:"database,omitempty"`
	Command  string `yaml:"command,omitempty"`

	// SMB
	Share string `yaml:"share,omitempty"`
	Hash  string `yaml:"hash,omitempty"`

	// SMTP, SMTPS
	ToUser string `yaml:"to_user,omitempty"`

	// SSH, WinRM
	Commands string `yaml:"commands,omitempty"`
}

// ServiceDefinition is the kind-tagged check definition of a service draft.
// Record-bearing kinds use Checks; ICMP, RDP, and VNC use the optional Match
// override instead.
type ServiceDefinition struct {
	Kind   ServiceKind   `yaml:"kind"`
	Checks []CheckRecord `yaml:"checks,omitempty"`
	Match  string        `yaml:"match,omitempty"`
}

// ServiceDraft is a service as authored in the editor document.
type ServiceDraft struct {
	Name       string            `yaml:"name"`
	Port       uint16            `yaml:"port"`
	Points     uint16            `yaml:"points"`
	Accounts   []User            `yaml:"accounts,omitempty"`
	Definition ServiceDefinition `yaml:"definition"`
}
