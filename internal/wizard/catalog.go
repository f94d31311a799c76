package wizard

import "scoreconf/internal/model"

// CatalogEntry is the starter draft for one service kind: its display name,
// default port and point value, whether the check logs in with accounts, and
// a sample check record showing the fields the kind requires.
type CatalogEntry struct {
	Kind     model.ServiceKind
	Label    string
	Port     uint16
	Points   uint16
	Accounts bool
	Sample   model.CheckRecord
}

// emptyHash is the SHA-256 of an empty file, used as the sample SMB hash.
const emptyHash = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

var catalog = []CatalogEntry{
	{Kind: model.KindDNS, Label: "DNS", Port: 53, Points: 100,
		Sample: model.CheckRecord{MatchingContent: "93.184.215.14", QType: "A", Domain: "example.com"}},
	{Kind: model.KindDocker, Label: "Docker", Port: 2375, Points: 100},
	{Kind: model.KindElasticsearch, Label: "Elasticsearch", Port: 9200, Points: 100,
		Sample: model.CheckRecord{MatchingContent: "green", Index: "logs"}},
	{Kind: model.KindFTP, Label: "FTP", Port: 21, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "hello", File: "pub/readme.txt"}},
	{Kind: model.KindHTTP, Label: "HTTP", Port: 80, Points: 100,
		Sample: model.CheckRecord{MatchingContent: "Welcome", UserAgent: "Mozilla/5.0", Vhost: "www.example.com", URI: "/"}},
	{Kind: model.KindHTTPS, Label: "HTTPS", Port: 443, Points: 100,
		Sample: model.CheckRecord{MatchingContent: "Welcome", UserAgent: "Mozilla/5.0", Vhost: "www.example.com", URI: "/"}},
	{Kind: model.KindICMP, Label: "ICMP Ping", Port: 0, Points: 25},
	{Kind: model.KindIMAP, Label: "IMAP", Port: 143, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "OK", Mailbox: "INBOX"}},
	{Kind: model.KindIMAPS, Label: "IMAPS", Port: 993, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "OK", Mailbox: "INBOX"}},
	{Kind: model.KindLDAP, Label: "LDAP", Port: 389, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "dc=example,dc=com", BaseDN: "dc=example,dc=com", Filter: "(objectClass=*)"}},
	{Kind: model.KindMSSQL, Label: "MSSQL", Port: 1433, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "1", Database: "scoring", Command: "SELECT 1;"}},
	{Kind: model.KindMySQL, Label: "MySQL", Port: 3306, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "1", Database: "scoring", Command: "SELECT 1;"}},
	{Kind: model.KindNFS, Label: "NFS", Port: 2049, Points: 100,
		Sample: model.CheckRecord{MatchingContent: "hello", File: "exports/readme.txt"}},
	{Kind: model.KindPOP3, Label: "POP3", Port: 110, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "OK", Mailbox: "INBOX"}},
	{Kind: model.KindPOP3S, Label: "POP3S", Port: 995, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "OK", Mailbox: "INBOX"}},
	{Kind: model.KindPostgreSQL, Label: "PostgreSQL", Port: 5432, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "1", Database: "scoring", Command: "SELECT 1;"}},
	{Kind: model.KindRDP, Label: "RDP", Port: 3389, Points: 100, Accounts: true},
	{Kind: model.KindSMB, Label: "SMB", Port: 445, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "hello", Share: "public", File: "readme.txt", Hash: emptyHash}},
	{Kind: model.KindSMTP, Label: "SMTP", Port: 25, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "250", ToUser: "user@example.com"}},
	{Kind: model.KindSMTPS, Label: "SMTPS", Port: 465, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "250", ToUser: "user@example.com"}},
	{Kind: model.KindSSH, Label: "SSH", Port: 22, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "Linux", Commands: "uname -a"}},
	{Kind: model.KindVNC, Label: "VNC", Port: 5900, Points: 100},
	{Kind: model.KindWinRM, Label: "WinRM", Port: 5985, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "Windows", Commands: "systeminfo"}},
	{Kind: model.KindWordpress, Label: "Wordpress", Port: 80, Points: 100, Accounts: true,
		Sample: model.CheckRecord{MatchingContent: "wp-content", UserAgent: "Mozilla/5.0", Vhost: "blog.example.com", URI: "/wp-login.php"}},
}

// Catalog lists the starter drafts for every service kind in display order.
func Catalog() []CatalogEntry {
	return catalog
}

// Entry looks up the catalog entry for a kind.
func Entry(kind model.ServiceKind) (CatalogEntry, bool) {
	for _, e := range catalog {
		if e.Kind == kind {
			return e, true
		}
	}
	return CatalogEntry{}, false
}

// Draft builds a starter service draft from a catalog entry. Record-bearing
// kinds get one sample check record; ICMP, RDP, and VNC rely on their
// default matchers.
func Draft(entry CatalogEntry) model.ServiceDraft {
	draft := model.ServiceDraft{
		Name:       string(entry.Kind),
		Port:       entry.Port,
		Points:     entry.Points,
		Definition: model.ServiceDefinition{Kind: entry.Kind},
	}
	if entry.Accounts {
		draft.Accounts = []model.User{{Username: "scoreuser", Password: "changeme"}}
	}
	switch entry.Kind {
	case model.KindICMP, model.KindRDP, model.KindVNC, model.KindDocker:
	default:
		draft.Definition.Checks = []model.CheckRecord{entry.Sample}
	}
	return draft
}
