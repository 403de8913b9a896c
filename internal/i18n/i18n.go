// Package i18n translates user-facing error messages for the
// Accept-Language locales the service supports.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// Supports reports whether locale has its own message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		if GetTranslator().Supports(lang) {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:      "Invalid request",
			ErrKeyInvalidRequestBody:  "Invalid request body",
			ErrKeyInternalError:       "An unexpected error occurred",
			ErrKeyInvalidCredentials:  "Invalid client credentials",
			ErrKeyAPIKeyRequired:      "API key is required",
			ErrKeyInvalidAPIKey:       "Invalid API key",
			ErrKeyNotFound:            "Not found",
			ErrKeyRateLimitExceeded:   "Too many requests, please try again later",
			ErrKeyInvalidToken:        "Invalid or expired token",
			ErrKeyTokenRequired:       "Authentication token is required",
			ErrKeyTimeout:             "The request took too long to complete",
			ErrKeyInvalidPipeline:     "The pipeline description is invalid",
			ErrKeyNumericDegenerate:   "The calculation did not produce a finite result for this pipeline",
			ErrKeyUnsupportedFormat:   "Unsupported report format",
			ErrKeyExportFailed:        "The report could not be exported",
			ErrKeyInvalidSettings:     "The calculation settings are invalid",
			ErrKeySettingsUnavailable: "Calculation settings storage is not available",
		},
		"pt": {
			ErrKeyInvalidRequest:      "Requisição inválida",
			ErrKeyInvalidRequestBody:  "Corpo da requisição inválido",
			ErrKeyInternalError:       "Ocorreu um erro inesperado",
			ErrKeyInvalidCredentials:  "Credenciais de cliente inválidas",
			ErrKeyAPIKeyRequired:      "Chave de API é obrigatória",
			ErrKeyInvalidAPIKey:       "Chave de API inválida",
			ErrKeyNotFound:            "Não encontrado",
			ErrKeyRateLimitExceeded:   "Muitas requisições, tente novamente mais tarde",
			ErrKeyInvalidToken:        "Token inválido ou expirado",
			ErrKeyTokenRequired:       "Token de autenticação é obrigatório",
			ErrKeyTimeout:             "A requisição demorou demais para ser concluída",
			ErrKeyInvalidPipeline:     "A descrição da tubulação é inválida",
			ErrKeyNumericDegenerate:   "O cálculo não produziu um resultado finito para esta tubulação",
			ErrKeyUnsupportedFormat:   "Formato de relatório não suportado",
			ErrKeyExportFailed:        "Não foi possível exportar o relatório",
			ErrKeyInvalidSettings:     "As configurações de cálculo são inválidas",
			ErrKeySettingsUnavailable: "O armazenamento das configurações de cálculo não está disponível",
		},
		"nl": {
			ErrKeyInvalidRequest:      "Ongeldig verzoek",
			ErrKeyInvalidRequestBody:  "Ongeldige aanvraag body",
			ErrKeyInternalError:       "Er is een onverwachte fout opgetreden",
			ErrKeyInvalidCredentials:  "Ongeldige clientgegevens",
			ErrKeyAPIKeyRequired:      "API-sleutel is vereist",
			ErrKeyInvalidAPIKey:       "Ongeldige API-sleutel",
			ErrKeyNotFound:            "Niet gevonden",
			ErrKeyRateLimitExceeded:   "Te veel verzoeken, probeer het later opnieuw",
			ErrKeyInvalidToken:        "Ongeldig of verlopen token",
			ErrKeyTokenRequired:       "Authenticatietoken is vereist",
			ErrKeyTimeout:             "Het verzoek duurde te lang",
			ErrKeyInvalidPipeline:     "De leidingbeschrijving is ongeldig",
			ErrKeyNumericDegenerate:   "De berekening gaf geen eindig resultaat voor deze leiding",
			ErrKeyUnsupportedFormat:   "Niet-ondersteund rapportformaat",
			ErrKeyExportFailed:        "Het rapport kon niet worden geëxporteerd",
			ErrKeyInvalidSettings:     "De rekeninstellingen zijn ongeldig",
			ErrKeySettingsUnavailable: "Opslag van rekeninstellingen is niet beschikbaar",
		},
	}
}
