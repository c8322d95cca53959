// Package export renders generated slides into PowerPoint files.
//
// PPTXExporter lays out each slide on a dark 16:9 canvas: a right-aligned
// title, a localized copyright footer, and either a two-column body (code
// sample beside the bullets) or a single full-width bullet column. Files are
// written atomically into the configured output directory and named from the
// presentation title.
//
// Service wraps an exporter with the export history store and push
// notifications so every attempt is recorded and announced.
package export
