package skemadesc

import "github.com/reoring/skemadesc/schema"

// stringFormats are check kinds that only tag the string format.
var stringFormats = map[schema.CheckKind]struct{}{
	schema.CheckEmail: {},
	schema.CheckURL:   {},
	schema.CheckEmoji: {},
	schema.CheckUUID:  {},
	schema.CheckCUID:  {},
	schema.CheckCUID2: {},
	schema.CheckULID:  {},
}

// ExtractConstraints folds checks left to right into constraint fields for the
// given domain. Check kinds the domain does not know contribute nothing. When
// two checks write the same field the later one wins.
func ExtractConstraints(domain Domain, checks []schema.Check) Constraints {
	out, _ := extract(domain, checks)
	return out
}

// extract also returns the check kinds it skipped, for debug logging.
func extract(domain Domain, checks []schema.Check) (Constraints, []schema.CheckKind) {
	var (
		out     Constraints
		skipped []schema.CheckKind
	)
	for _, c := range checks {
		var ok bool
		switch domain {
		case DomainNumber, DomainBigInt:
			ok = numericCheck(&out, domain, c)
		case DomainString:
			ok = stringCheck(&out, c)
		case DomainDate:
			ok = dateCheck(&out, c)
		}
		if !ok {
			skipped = append(skipped, c.Kind)
		}
	}
	return out, skipped
}

func numericCheck(out *Constraints, domain Domain, c schema.Check) bool {
	switch c.Kind {
	case schema.CheckMin:
		out.Set("min", c.Value)
		if c.Inclusive {
			out.Set("minInclusive", true)
		}
	case schema.CheckMax:
		out.Set("max", c.Value)
		if c.Inclusive {
			out.Set("maxInclusive", true)
		}
	case schema.CheckMultipleOf:
		out.Set("multipleOf", c.Value)
	case schema.CheckInt:
		if domain != DomainNumber {
			return false
		}
		out.Set("int", true)
	case schema.CheckFinite:
		if domain != DomainNumber {
			return false
		}
		out.Set("finite", true)
	default:
		return false
	}
	return true
}

func stringCheck(out *Constraints, c schema.Check) bool {
	switch c.Kind {
	case schema.CheckMin, schema.CheckMax, schema.CheckLength,
		schema.CheckStartsWith, schema.CheckEndsWith:
		out.Set(string(c.Kind), c.Value)
	case schema.CheckIncludes:
		out.Set("includes", c.Value)
		if c.Position != nil {
			out.Set("position", *c.Position)
		}
	case schema.CheckRegex:
		out.Set("regex", c.Pattern)
		if c.Flags != "" {
			out.Set("flags", c.Flags)
		}
	case schema.CheckIP:
		out.Set("kind", "ip")
		if c.Version != "" {
			out.Set("version", c.Version)
		}
	case schema.CheckDatetime:
		out.Set("kind", "datetime")
		if c.Offset {
			out.Set("offset", true)
		}
		if c.Precision != nil {
			out.Set("precision", *c.Precision)
		}
	default:
		if _, ok := stringFormats[c.Kind]; !ok {
			return false
		}
		out.Set("kind", string(c.Kind))
	}
	return true
}

func dateCheck(out *Constraints, c schema.Check) bool {
	switch c.Kind {
	case schema.CheckMin, schema.CheckMax:
		out.Set(string(c.Kind), c.Value)
		return true
	}
	return false
}
