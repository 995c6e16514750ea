package audience

import (
	"net/url"
	"strconv"
	"strings"

	"notifyconsole/internal/domain/entity"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered parameter list. Order is significant: the encoding of
// equal inputs is byte-identical.
type Params []Param

func (p Params) add(key, value string) Params {
	return append(p, Param{Key: key, Value: value})
}

// Get returns the first value stored under key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}

	return "", false
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	_, ok := p.Get(key)

	return ok
}

// Encode renders the params as a query string in insertion order.
func (p Params) Encode() string {
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(param.Key))
		b.WriteByte('=')
		b.WriteString(escape(param.Value))
	}

	return b.String()
}

// escape percent-encodes v, spaces as %20.
func escape(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

// Draft is the message part of a dispatch.
type Draft struct {
	Messenger entity.Channel
	Text      string
	Link      string
}

func (d Draft) params(p Params) Params {
	p = p.add("messenger_type", d.Messenger.String())
	p = p.add("text", d.Text)
	if d.Link != "" {
		p = p.add("link", d.Link)
	}

	return p
}

// Window is a skip/limit slice of a listing.
type Window struct {
	Skip  int
	Limit int
}

// BuildSingle builds the parameters of a send to one user.
func BuildSingle(userID int64, d Draft) Params {
	p := Params{}.add("user_id", strconv.FormatInt(userID, 10))

	return d.params(p)
}

// BuildChannel builds the parameters of a broadcast-channel post.
func BuildChannel(d Draft) Params {
	return d.params(nil)
}

// BuildBulk builds the parameters of a send to every user matching c.
func BuildBulk(c entity.Criteria, d Draft) Params {
	p := d.params(nil)

	return criteriaParams(p, c, false)
}

// BuildListing builds the parameters of a directory page query.
func BuildListing(c entity.Criteria, w Window) Params {
	p := Params{}.
		add("skip", strconv.Itoa(w.Skip)).
		add("limit", strconv.Itoa(w.Limit))
	if c.SearchTerm != "" {
		p = p.add("search", c.SearchTerm)
	}

	return criteriaParams(p, c, true)
}

func criteriaParams(p Params, c entity.Criteria, listing bool) Params {
	c = c.Normalize()

	if v, ok := c.HasSubscription.Bool(); ok {
		p = p.add("has_subscription", strconv.FormatBool(v))
	}
	if id, ok := c.Subscription.ID(); ok {
		p = p.add("subscription_id", strconv.FormatInt(id, 10))
	}
	if listing && c.HasMessages {
		p = p.add("has_messages", "true")
	}
	if c.Platform != entity.PlatformNone {
		p = p.add(string(c.Platform), "true")
	}
	if !listing && c.SearchTerm != "" {
		p = p.add("search", c.SearchTerm)
	}

	return p
}
