package handler

import "strings"

// htmlEscaper replaces the characters that are significant in HTML with
// their entities.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#x27;",
	"<", "&lt;",
	">", "&gt;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// clean trims surrounding whitespace and HTML-escapes s.
func clean(s string) string {
	return htmlEscaper.Replace(strings.TrimSpace(s))
}

// Provider domains whose local part drops a subaddress suffix.
var (
	gmailDomains   = domainSet("gmail.com", "googlemail.com")
	icloudDomains  = domainSet("icloud.com", "me.com")
	outlookDomains = domainSet(
		"hotmail.at", "hotmail.be", "hotmail.ca", "hotmail.cl", "hotmail.co.il", "hotmail.co.nz",
		"hotmail.co.th", "hotmail.co.uk", "hotmail.com", "hotmail.com.ar", "hotmail.com.au",
		"hotmail.com.br", "hotmail.com.gr", "hotmail.com.mx", "hotmail.com.pe", "hotmail.com.tr",
		"hotmail.com.vn", "hotmail.cz", "hotmail.de", "hotmail.dk", "hotmail.es", "hotmail.fr",
		"hotmail.hu", "hotmail.id", "hotmail.ie", "hotmail.in", "hotmail.it", "hotmail.jp",
		"hotmail.kr", "hotmail.lv", "hotmail.my", "hotmail.ph", "hotmail.pt", "hotmail.sa",
		"hotmail.sg", "hotmail.sk", "live.be", "live.co.uk", "live.com", "live.com.ar",
		"live.com.mx", "live.de", "live.es", "live.eu", "live.fr", "live.it", "live.nl",
		"msn.com", "outlook.at", "outlook.be", "outlook.cl", "outlook.co.il", "outlook.co.nz",
		"outlook.co.th", "outlook.com", "outlook.com.ar", "outlook.com.au", "outlook.com.br",
		"outlook.com.gr", "outlook.com.pe", "outlook.com.tr", "outlook.com.vn", "outlook.cz",
		"outlook.de", "outlook.dk", "outlook.es", "outlook.fr", "outlook.hu", "outlook.id",
		"outlook.ie", "outlook.in", "outlook.it", "outlook.jp", "outlook.kr", "outlook.lv",
		"outlook.my", "outlook.ph", "outlook.pt", "outlook.sa", "outlook.sg", "outlook.sk",
		"passport.com",
	)
	yahooDomains = domainSet(
		"rocketmail.com", "yahoo.ca", "yahoo.co.uk", "yahoo.com", "yahoo.de", "yahoo.fr",
		"yahoo.in", "yahoo.it", "ymail.com",
	)
)

func domainSet(domains ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(domains))
	for _, d := range domains {
		set[d] = struct{}{}
	}
	return set
}

func hasDomain(set map[string]struct{}, host string) bool {
	_, ok := set[host]
	return ok
}

// normalizeEmail trims and lowercases an address, then applies provider
// rules: Gmail drops dots and any +suffix and folds googlemail.com into
// gmail.com; iCloud and Outlook/Hotmail/Live drop any +suffix; Yahoo drops
// the last -suffix. Values without a single @ are only trimmed so the email
// rule can still reject them.
func normalizeEmail(s string) string {
	s = strings.TrimSpace(s)
	local, host, ok := strings.Cut(s, "@")
	if !ok || local == "" || host == "" || strings.Contains(host, "@") {
		return s
	}
	local = strings.ToLower(local)
	host = strings.ToLower(host)

	switch {
	case hasDomain(gmailDomains, host):
		local, _, _ = strings.Cut(local, "+")
		local = strings.ReplaceAll(local, ".", "")
		host = "gmail.com"
	case hasDomain(icloudDomains, host), hasDomain(outlookDomains, host):
		local, _, _ = strings.Cut(local, "+")
	case hasDomain(yahooDomains, host):
		if i := strings.LastIndex(local, "-"); i > 0 {
			local = local[:i]
		}
	}
	return local + "@" + host
}
