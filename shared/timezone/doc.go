// Package timezone centralizes time handling in the configured application
// timezone (APP_TIMEZONE, standard IANA names). All timestamps written to the
// store and rendered in responses go through timezone.Now/Format/Parse so the
// service behaves consistently regardless of the host timezone.
package timezone
