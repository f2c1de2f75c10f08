// Package records reads the delimiter-separated input files (navigation nodes
// and page content) into header-keyed records.
//
// Input files are tolerated the way spreadsheet exports come: the delimiter is
// sniffed among comma, semicolon, pipe and tab, a UTF-8 byte order mark is
// dropped, header names are matched case- and whitespace-insensitively, and
// rows whose fields are all empty are skipped.
package records
