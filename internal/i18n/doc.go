// Package i18n resolves the user's locale and provides printers backed by the
// cdidc message catalog.
//
// Catalog keys are the English format strings themselves, so a missing
// translation degrades to English output. Identifier labels are deliberately
// absent from the catalog: scripts parse them.
package i18n
