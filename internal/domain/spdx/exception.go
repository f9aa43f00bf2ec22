package spdx

import (
	"github.com/osscompliance/scanlens/internal/domain/finding"
)

// knownExceptions lists the SPDX license exception identifiers the
// associator recognizes. Scanners report exceptions as standalone
// detections, so recognition works on the bare identifier.
var knownExceptions = map[string]struct{}{
	"389-exception":                     {},
	"Autoconf-exception-2.0":            {},
	"Autoconf-exception-3.0":            {},
	"Bison-exception-2.2":               {},
	"Bootloader-exception":              {},
	"CLISP-exception-2.0":               {},
	"Classpath-exception-2.0":           {},
	"DigiRule-FOSS-exception":           {},
	"FLTK-exception":                    {},
	"Fawkes-Runtime-exception":          {},
	"Font-exception-2.0":                {},
	"GCC-exception-2.0":                 {},
	"GCC-exception-3.1":                 {},
	"GPL-3.0-linking-exception":         {},
	"GPL-3.0-linking-source-exception":  {},
	"LGPL-3.0-linking-exception":        {},
	"LLVM-exception":                    {},
	"LZMA-exception":                    {},
	"Libtool-exception":                 {},
	"Linux-syscall-note":                {},
	"OCCT-exception-1.0":                {},
	"OCaml-LGPL-linking-exception":      {},
	"OpenJDK-assembly-exception-1.0":    {},
	"PS-or-PDF-font-exception-20170817": {},
	"Qt-GPL-exception-1.0":              {},
	"Qt-LGPL-exception-1.1":             {},
	"Qwt-exception-1.0":                 {},
	"SHL-2.0":                           {},
	"SHL-2.1":                           {},
	"Swift-exception":                   {},
	"Universal-FOSS-exception-1.0":      {},
	"WxWindows-exception-3.1":           {},
	"eCos-exception-2.0":                {},
	"freertos-exception-2.0":            {},
	"gnu-javamail-exception":            {},
	"i2p-gpl-java-exception":            {},
	"mif-exception":                     {},
	"openvpn-openssl-exception":         {},
	"u-boot-exception-2.0":              {},
}

// IsExceptionID reports whether id is a known SPDX license exception
// identifier.
func IsExceptionID(id string) bool {
	_, ok := knownExceptions[id]
	return ok
}

// AssociateLicensesWithExceptions merges standalone exception findings
// into the license findings reported at the identical text location,
// producing "<license> WITH <exception>" expressions and dropping the
// now-redundant separate exception entries. An exception with no license
// at its location is kept as "NOASSERTION WITH <exception>" so no
// location drops out of the result. The merged finding carries the lower
// of the two scores.
//
// The transform is pure: it returns a new deduplicated, sorted set and
// never increases the number of distinct locations covered.
func AssociateLicensesWithExceptions(findings []finding.LicenseFinding) []finding.LicenseFinding {
	licenses := make(map[finding.TextLocation][]finding.LicenseFinding)
	exceptions := make(map[finding.TextLocation][]finding.LicenseFinding)

	for _, f := range findings {
		if IsExceptionID(f.License()) {
			exceptions[f.Location()] = append(exceptions[f.Location()], f)
		} else {
			licenses[f.Location()] = append(licenses[f.Location()], f)
		}
	}

	result := make([]finding.LicenseFinding, 0, len(findings))

	for location, licenseFindings := range licenses {
		exceptionFindings := exceptions[location]
		if len(exceptionFindings) == 0 {
			result = append(result, licenseFindings...)
			continue
		}

		for _, license := range licenseFindings {
			for _, exception := range exceptionFindings {
				result = append(result, finding.NewLicenseFinding(
					license.License()+" WITH "+exception.License(),
					location,
					min(license.Score(), exception.Score()),
				))
			}
		}
	}

	// Exceptions with no license at the same location cannot be merged;
	// keep their locations covered under NOASSERTION.
	for location, exceptionFindings := range exceptions {
		if _, ok := licenses[location]; ok {
			continue
		}
		for _, exception := range exceptionFindings {
			result = append(result, finding.NewLicenseFinding(
				NoAssertion+" WITH "+exception.License(),
				location,
				exception.Score(),
			))
		}
	}

	return finding.SortLicenseFindings(result)
}
