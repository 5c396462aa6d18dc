// Package i18n renders validation errors from package validator in the
// caller's language.
//
// Messages live in YAML catalogs keyed by language and then by the dotted
// translation key carried on each validator.ValidationError:
//
//	en:
//	  validation:
//	    positive: "%{field} must be positive, got %{value}"
//
// A catalog for English, German, Spanish and French ships with the package
// (NewBuiltinAdapter); FSAdapter loads additional catalogs from any fs.FS and
// MapAdapter serves them from memory.
//
// # Usage
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewBuiltinAdapter(),
//	    i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//	    return err
//	}
//
//	_, err = constrain.Int64.Positive(-1234567, "amount")
//	msgs := tr.Errors("de-AT,de;q=0.9", err)
//	// msgs["amount"] == []string{"amount muss positiv sein, erhalten: -1.234.567"}
//
// Language preferences are matched with golang.org/x/text/language, so plain
// tags, regional variants and Accept-Language values all work. Numeric
// placeholder values are printed with golang.org/x/text/message using the
// matched language's digit grouping.
//
// # Configuration
//
// NewFromConfig builds a translator from Config, which LoadConfig fills from
// CONSTRAIN_DEFAULT_LANGUAGE and CONSTRAIN_FALLBACK_TO_MESSAGE.
package i18n
