package convert

import (
	"strings"

	"scoreconf/internal/model"
)

// Per-kind check validation is data, not code: each kind declares its fields
// as (name, accessor, checks) tuples and one generic routine interprets them.
// Property order in the derived environments follows declaration order here.

type valueCheck struct {
	ok  func(string) bool
	msg string
}

type fieldRule struct {
	name   string
	get    func(model.CheckRecord) string
	checks []valueCheck
}

type kindSpec struct {
	checkName    string
	fields       []fieldRule
	singleton    bool   // ICMP, RDP, VNC: one environment, optional matcher
	defaultMatch string // matcher used when a singleton kind supplies none
	noEnvs       bool   // Docker: no validation, no environments
}

func nonEmpty(name string, get func(model.CheckRecord) string, msg string, extra ...valueCheck) fieldRule {
	checks := append([]valueCheck{{
		ok:  func(s string) bool { return s != "" },
		msg: msg,
	}}, extra...)
	return fieldRule{name: name, get: get, checks: checks}
}

func httpFields() []fieldRule {
	return []fieldRule{
		nonEmpty("user_agent", func(r model.CheckRecord) string { return r.UserAgent }, "User agent cannot be empty"),
		nonEmpty("vhost", func(r model.CheckRecord) string { return r.Vhost }, "Vhost cannot be empty"),
		nonEmpty("uri", func(r model.CheckRecord) string { return r.URI }, "URI cannot be empty"),
	}
}

func mailboxField() []fieldRule {
	return []fieldRule{
		nonEmpty("mailbox", func(r model.CheckRecord) string { return r.Mailbox }, "Mailbox cannot be empty"),
	}
}

func sqlFields() []fieldRule {
	return []fieldRule{
		nonEmpty("database", func(r model.CheckRecord) string { return r.Database }, "Database cannot be empty"),
		nonEmpty("command", func(r model.CheckRecord) string { return r.Command }, "Command cannot be empty"),
	}
}

func mailToFields() []fieldRule {
	return []fieldRule{
		nonEmpty("to_user", func(r model.CheckRecord) string { return r.ToUser }, "To user cannot be empty",
			valueCheck{
				ok:  func(s string) bool { return s == "" || strings.Contains(s, "@") },
				msg: "To user must contain @",
			}),
	}
}

func commandsField() []fieldRule {
	return []fieldRule{
		nonEmpty("commands", func(r model.CheckRecord) string { return r.Commands }, "Commands cannot be empty"),
	}
}

func fileField() []fieldRule {
	return []fieldRule{
		nonEmpty("file", func(r model.CheckRecord) string { return r.File }, "File cannot be empty"),
	}
}

var kindSpecs = map[model.ServiceKind]kindSpec{
	model.KindDNS: {
		checkName: "DNSCheck",
		fields: []fieldRule{
			nonEmpty("qtype", func(r model.CheckRecord) string { return r.QType }, "Query type cannot be empty"),
			nonEmpty("domain", func(r model.CheckRecord) string { return r.Domain }, "Domain cannot be empty"),
		},
	},
	model.KindDocker: {checkName: "DockerCheck", noEnvs: true},
	model.KindElasticsearch: {
		checkName: "ElasticsearchCheck",
		fields: []fieldRule{
			nonEmpty("index", func(r model.CheckRecord) string { return r.Index }, "Index cannot be empty"),
		},
	},
	model.KindFTP:   {checkName: "FTPCheck", fields: fileField()},
	model.KindHTTP:  {checkName: "HTTPCheck", fields: httpFields()},
	model.KindHTTPS: {checkName: "HTTPSCheck", fields: httpFields()},
	model.KindICMP: {
		checkName:    "ICMPCheck",
		singleton:    true,
		defaultMatch: "1 packets transmitted, 1 received",
	},
	model.KindIMAP:  {checkName: "IMAPCheck", fields: mailboxField()},
	model.KindIMAPS: {checkName: "IMAPSCheck", fields: mailboxField()},
	model.KindLDAP: {
		checkName: "LDAPCheck",
		fields: []fieldRule{
			nonEmpty("base_dn", func(r model.CheckRecord) string { return r.BaseDN }, "Base DN cannot be empty"),
			nonEmpty("filter", func(r model.CheckRecord) string { return r.Filter }, "Filter cannot be empty"),
		},
	},
	model.KindMSSQL:      {checkName: "MSSQLCheck", fields: sqlFields()},
	model.KindMySQL:      {checkName: "MySQLCheck", fields: sqlFields()},
	model.KindNFS:        {checkName: "NFSCheck", fields: fileField()},
	model.KindPOP3:       {checkName: "POP3Check", fields: mailboxField()},
	model.KindPOP3S:      {checkName: "POP3SCheck", fields: mailboxField()},
	model.KindPostgreSQL: {checkName: "PostgreSQLCheck", fields: sqlFields()},
	model.KindRDP: {
		checkName:    "RDPCheck",
		singleton:    true,
		defaultMatch: "SUCCESS$",
	},
	model.KindSMB: {
		checkName: "SMBCheck",
		fields: []fieldRule{
			nonEmpty("share", func(r model.CheckRecord) string { return r.Share }, "Share cannot be empty"),
			nonEmpty("file", func(r model.CheckRecord) string { return r.File }, "File cannot be empty"),
			nonEmpty("hash", func(r model.CheckRecord) string { return r.Hash }, "Hash cannot be empty",
				valueCheck{
					ok:  func(s string) bool { return s == "" || len(s) == 64 },
					msg: "Hash must be 64 characters",
				}),
		},
	},
	model.KindSMTP:      {checkName: "SMTPCheck", fields: mailToFields()},
	model.KindSMTPS:     {checkName: "SMTPSCheck", fields: mailToFields()},
	model.KindSSH:       {checkName: "SSHCheck", fields: commandsField()},
	model.KindVNC:       {checkName: "VNCCheck", singleton: true, defaultMatch: "ACCOUNT FOUND"},
	model.KindWinRM:     {checkName: "WinRMCheck", fields: commandsField()},
	model.KindWordpress: {checkName: "WordpressCheck", fields: httpFields()},
}

// CheckName returns the scoring engine's check class for a service kind. It
// is both a diagnostic and a component of the synthesized service name.
func CheckName(kind model.ServiceKind) string {
	return kindSpecs[kind].checkName
}

// deriveEnvironments validates a service definition's check records and
// turns each into one environment. Singleton kinds (ICMP, RDP, VNC) never
// fail and produce one environment from the matcher or the kind default;
// Docker produces nothing. Any violated rule on any record fails the whole
// service: partial environment lists are never returned.
func deriveEnvironments(def model.ServiceDefinition, machine, service string) ([]model.Environment, error) {
	spec := kindSpecs[def.Kind]

	if spec.noEnvs {
		return nil, nil
	}

	if spec.singleton {
		match := def.Match
		if match == "" {
			match = spec.defaultMatch
		}
		return []model.Environment{{MatchingContent: match}}, nil
	}

	envs := make([]model.Environment, 0, len(def.Checks))
	for _, record := range def.Checks {
		var reasons []string
		if record.MatchingContent == "" {
			reasons = append(reasons, "Matching content cannot be empty")
		}
		for _, field := range spec.fields {
			value := field.get(record)
			for _, check := range field.checks {
				if !check.ok(value) {
					reasons = append(reasons, check.msg)
				}
			}
		}
		if len(reasons) > 0 {
			return nil, &ServiceNotFullyConfiguredError{
				Machine: machine,
				Service: service,
				Reasons: strings.Join(reasons, ", "),
			}
		}

		properties := make([]model.Property, 0, len(spec.fields))
		for _, field := range spec.fields {
			properties = append(properties, model.Property{Name: field.name, Value: field.get(record)})
		}
		envs = append(envs, model.Environment{
			MatchingContent: record.MatchingContent,
			Properties:      properties,
		})
	}
	return envs, nil
}
