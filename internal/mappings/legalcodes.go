package mappings

import (
	"regexp"
	"strings"
)

// BandRule is one ordered legal-problem classification rule: a pattern
// keyed on the band's leading numeric code plus keyword alternatives, and
// an optional exclusion that disambiguates overlapping keywords between
// bands (Go's regexp has no lookahead, so the original negative lookaheads
// are expressed as a second pattern that must NOT match).
type BandRule struct {
	Pattern *regexp.Regexp
	Exclude *regexp.Regexp
	Label   string
}

// LegalProblemPatterns is the ordered band rule list, scanned top to bottom.
// Band order runs 01 through 99 so the more specific two-digit bands keep
// their precedence over loose one-digit prefixes.
var LegalProblemPatterns = []BandRule{
	// Consumer/Finance (01-09)
	{Pattern: regexp.MustCompile(`(?i)^\s*0?1\s*[-: ]?\s*.*?(?:bankrupt|debtor)`), Label: "01 Bankruptcy/Debtor Relief"},
	{Pattern: regexp.MustCompile(`(?i)^\s*0?2\s*[-: ]?\s*.*?(?:collect|repo|def|garn)`), Label: "02 Collection (including Repo/Def/Garnish)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*0?3\s*[-: ]?\s*.*?(?:contract|warrant)`), Label: "03 Contracts/Warranties"},
	{Pattern: regexp.MustCompile(`(?i)^\s*0?4\s*[-: ]?\s*.*?(?:collect.*?practi|creditor|harass)`), Label: "04 Collection Practices/Creditor Harassment"},
	{Pattern: regexp.MustCompile(`(?i)^\s*0?5\s*[-: ]?\s*.*?(?:predat.*?lend|lend.*?practice)`), Exclude: regexp.MustCompile(`(?i)mortgage`), Label: "05 Predatory Lending Practices (not mortgages)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*0?6\s*[-: ]?\s*.*?(?:loan|install.*?purch)`), Label: "06 Loans/Installment Purch."},
	{Pattern: regexp.MustCompile(`(?i)^\s*0?7\s*[-: ]?\s*.*?(?:public.*?util|utilit)`), Label: "07 Public Utilities"},
	{Pattern: regexp.MustCompile(`(?i)^\s*0?8\s*[-: ]?\s*.*?(?:unfair|decept).*?(?:sales|practice)`), Exclude: regexp.MustCompile(`(?i)real.*prop`), Label: "08 Unfair and Deceptive Sales and Practices (not real property)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*0?9\s*[-: ]?\s*.*?(?:consumer|finance)`), Label: "09 Other Consumer/Finance"},

	// Education (12-19)
	{Pattern: regexp.MustCompile(`(?i)^\s*1?2\s*[-: ]?\s*.*?(?:discipl|expul|suspen)`), Label: "12 Discipline (including expulsion and suspension)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*1?3\s*[-: ]?\s*.*?(?:special.*?ed|learn.*?disab)`), Label: "13 Special Education/Learning Disabilities"},
	{Pattern: regexp.MustCompile(`(?i)^\s*1?4\s*[-: ]?\s*.*?(?:access|biling|resid|test)`), Label: "14 Access (Including Bilingual, Residency, Testing)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*1?6\s*[-: ]?\s*.*?(?:student|financ.*?aid)`), Label: "16 Student Financial Aid"},
	{Pattern: regexp.MustCompile(`(?i)^\s*1?9\s*[-: ]?\s*.*?(?:educ)`), Label: "19 Other Education"},

	// Employment (21-29)
	{Pattern: regexp.MustCompile(`(?i)^\s*2?1\s*[-: ]?\s*.*?(?:employ.*?discrim)`), Label: "21 Employment Discrimination"},
	{Pattern: regexp.MustCompile(`(?i)^\s*2?2\s*[-: ]?\s*.*?(?:wage|flsa)`), Label: "22 Wage Claim and other FLSA Issues"},
	{Pattern: regexp.MustCompile(`(?i)^\s*2?3\s*[-: ]?\s*.*?(?:eitc|earn.*?income.*?tax)`), Label: "23 EITC (Earned Income Tax Credit)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*2?4\s*[-: ]?\s*.*?(?:tax)`), Exclude: regexp.MustCompile(`(?i)eitc`), Label: "24 Taxes (not EITC)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*2?5\s*[-: ]?\s*.*?(?:employ.*?right)`), Label: "25 Employee Rights"},
	{Pattern: regexp.MustCompile(`(?i)^\s*2?9\s*[-: ]?\s*.*?(?:employ|ceta)`), Label: "29 Other Employment"},

	// Family (30-39)
	{Pattern: regexp.MustCompile(`(?i)^\s*3?0\s*[-: ]?\s*.*?(?:adopt)`), Label: "30 Adoption"},
	{Pattern: regexp.MustCompile(`(?i)^\s*3?1\s*[-: ]?\s*.*?(?:custody|visit)`), Label: "31 Custody/Visitation"},
	{Pattern: regexp.MustCompile(`(?i)^\s*3?2\s*[-: ]?\s*.*?(?:divorce|sep|annul)`), Label: "32 Divorce/Sep./Annul."},
	{Pattern: regexp.MustCompile(`(?i)^\s*3?3\s*[-: ]?\s*.*?(?:adult.*?guard|conserv)`), Label: "33 Adult Guardianship/Conserv."},
	{Pattern: regexp.MustCompile(`(?i)^\s*3?4\s*[-: ]?\s*.*?(?:name.*?change)`), Label: "34 Name Change"},
	{Pattern: regexp.MustCompile(`(?i)^\s*3?5\s*[-: ]?\s*.*?(?:parent.*?right.*?term)`), Label: "35 Parental Rights Termin."},
	{Pattern: regexp.MustCompile(`(?i)^\s*3?6\s*[-: ]?\s*.*?(?:patern)`), Label: "36 Paternity"},
	{Pattern: regexp.MustCompile(`(?i)^\s*3?7\s*[-: ]?\s*.*?(?:dom.*?abuse)`), Label: "37 Domestic Abuse"},
	{Pattern: regexp.MustCompile(`(?i)^\s*3?8\s*[-: ]?\s*.*?(?:support)`), Label: "38 Support"},
	{Pattern: regexp.MustCompile(`(?i)^\s*3?9\s*[-: ]?\s*.*?(?:family)`), Label: "39 Other Family"},

	// Juvenile (41-49)
	{Pattern: regexp.MustCompile(`(?i)^\s*4?1\s*[-: ]?\s*.*?(?:delinq)`), Label: "41 Delinquent"},
	{Pattern: regexp.MustCompile(`(?i)^\s*4?2\s*[-: ]?\s*.*?(?:neglect|abuse|depend)`), Label: "42 Neglected/Abused/Depend."},
	{Pattern: regexp.MustCompile(`(?i)^\s*4?3\s*[-: ]?\s*.*?(?:emancip)`), Label: "43 Emancipation"},
	{Pattern: regexp.MustCompile(`(?i)^\s*4?4\s*[-: ]?\s*.*?(?:minor.*?guard|conserv)`), Label: "44 Minor Guardian/Conservatorship"},
	{Pattern: regexp.MustCompile(`(?i)^\s*4?9\s*[-: ]?\s*.*?(?:juvenile)`), Label: "49 Other Juvenile"},

	// Health (51-59)
	{Pattern: regexp.MustCompile(`(?i)^\s*5?1\s*[-: ]?\s*.*?(?:medicaid|tenncare)`), Label: "51 Medicaid"},
	{Pattern: regexp.MustCompile(`(?i)^\s*5?2\s*[-: ]?\s*.*?(?:medicare)`), Label: "52 Medicare"},
	{Pattern: regexp.MustCompile(`(?i)^\s*5?3\s*[-: ]?\s*.*?(?:govern.*?child.*?health|insur.*?program)`), Label: "53 Government Children's Health Insurance Programs"},
	{Pattern: regexp.MustCompile(`(?i)^\s*5?4\s*[-: ]?\s*.*?(?:home.*?comm.*?base|care)`), Label: "54 Home and Community Based Care"},
	{Pattern: regexp.MustCompile(`(?i)^\s*5?5\s*[-: ]?\s*.*?(?:private.*?health.*?insur)`), Label: "55 Private Health Insurance"},
	{Pattern: regexp.MustCompile(`(?i)^\s*5?6\s*[-: ]?\s*.*?(?:long.*?term.*?health|care.*?facil)`), Label: "56 Long Term Health Care Facilities"},
	{Pattern: regexp.MustCompile(`(?i)^\s*5?7\s*[-: ]?\s*.*?(?:state.*?local.*?health)`), Label: "57 State and Local Health"},
	{Pattern: regexp.MustCompile(`(?i)^\s*5?9\s*[-: ]?\s*.*?(?:health)`), Label: "59 Other Health"},

	// Housing (61-69)
	{Pattern: regexp.MustCompile(`(?i)^\s*6?1\s*[-: ]?\s*.*?(?:fed.*?subsid.*?hous|subsid.*?hous)`), Label: "61 Fed. Subsidized Housing"},
	{Pattern: regexp.MustCompile(`(?i)^\s*6?2\s*[-: ]?\s*.*?(?:homeown|real.*?prop)`), Exclude: regexp.MustCompile(`(?i)foreclos`), Label: "62 Homeownership/Real Prop. (not foreclosure)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*6?3\s*[-: ]?\s*.*?(?:private.*?land|tenant)`), Label: "63 Private Landlord/Tenant"},
	{Pattern: regexp.MustCompile(`(?i)^\s*6?4\s*[-: ]?\s*.*?(?:public.*?hous)`), Label: "64 Public Housing"},
	{Pattern: regexp.MustCompile(`(?i)^\s*6?5\s*[-: ]?\s*.*?(?:mobile.*?home)`), Label: "65 Mobile Homes"},
	{Pattern: regexp.MustCompile(`(?i)^\s*6?6\s*[-: ]?\s*.*?(?:hous.*?discrim)`), Label: "66 Housing Discrimination"},
	{Pattern: regexp.MustCompile(`(?i)^\s*6?7\s*[-: ]?\s*.*?(?:mortgage.*?forecl)`), Exclude: regexp.MustCompile(`(?i)predat`), Label: "67 Mortgage Foreclosures (not predatory Lending/practices)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*6?8\s*[-: ]?\s*.*?(?:mortgage.*?predat|predat.*?lend)`), Label: "68 Mortgage Predatory Lending/Practices"},
	{Pattern: regexp.MustCompile(`(?i)^\s*6?9\s*[-: ]?\s*.*?(?:hous)`), Label: "69 Other Housing"},

	// Income maintenance (71-79)
	{Pattern: regexp.MustCompile(`(?i)^\s*7?1\s*[-: ]?\s*.*?(?:tanf|famil.*?first)`), Label: "71 TANF"},
	{Pattern: regexp.MustCompile(`(?i)^\s*7?2\s*[-: ]?\s*.*?(?:social.*?secur)`), Exclude: regexp.MustCompile(`(?i)ssdi`), Label: "72 Social Security (not SSDI)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*7?3\s*[-: ]?\s*.*?(?:food.*?stamp)`), Label: "73 Food Stamps"},
	{Pattern: regexp.MustCompile(`(?i)^\s*7?4\s*[-: ]?\s*.*?(?:ssdi)`), Label: "74 SSDI"},
	{Pattern: regexp.MustCompile(`(?i)^\s*7?5\s*[-: ]?\s*.*?(?:ssi)`), Label: "75 SSI"},
	{Pattern: regexp.MustCompile(`(?i)^\s*7?6\s*[-: ]?\s*.*?(?:unemploy.*?comp)`), Label: "76 Unemployment Compensation"},
	{Pattern: regexp.MustCompile(`(?i)^\s*7?7\s*[-: ]?\s*.*?(?:veteran.*?bene)`), Label: "77 Veterans Benefits"},
	{Pattern: regexp.MustCompile(`(?i)^\s*7?8\s*[-: ]?\s*.*?(?:state.*?local.*?income)`), Label: "78 State and Local Income Maintenance"},
	{Pattern: regexp.MustCompile(`(?i)^\s*7?9\s*[-: ]?\s*.*?(?:income|mainten)`), Label: "79 Other Income Maintenance"},

	// Individual rights (81-89)
	{Pattern: regexp.MustCompile(`(?i)^\s*8?1\s*[-: ]?\s*.*?(?:immigr|natural)`), Label: "81 Immigration/Naturalization"},
	{Pattern: regexp.MustCompile(`(?i)^\s*8?2\s*[-: ]?\s*.*?(?:mental.*?health)`), Label: "82 Mental Health"},
	{Pattern: regexp.MustCompile(`(?i)^\s*8?4\s*[-: ]?\s*.*?(?:disab.*?right)`), Label: "84 Disability Rights"},
	{Pattern: regexp.MustCompile(`(?i)^\s*8?5\s*[-: ]?\s*.*?(?:civil.*?right)`), Label: "85 Civil Rights"},
	{Pattern: regexp.MustCompile(`(?i)^\s*8?6\s*[-: ]?\s*.*?(?:human.*?traffic)`), Label: "86 Human Trafficking"},
	{Pattern: regexp.MustCompile(`(?i)^\s*8?7\s*[-: ]?\s*.*?(?:expung)`), Label: "87 Expungement"},
	{Pattern: regexp.MustCompile(`(?i)^\s*8?9\s*[-: ]?\s*.*?(?:other.*?individ.*?right|individual.*?right)`), Label: "89 Other Individual Rights"},

	// Miscellaneous (93-99)
	{Pattern: regexp.MustCompile(`(?i)^\s*9?3\s*[-: ]?\s*.*?(?:licens)`), Label: "93 Licenses (Auto and Other)"},
	{Pattern: regexp.MustCompile(`(?i)^\s*9?4\s*[-: ]?\s*.*?(?:tort)`), Label: "94 Torts"},
	{Pattern: regexp.MustCompile(`(?i)^\s*9?5\s*[-: ]?\s*.*?(?:will|estat)`), Label: "95 Wills/Estates"},
	{Pattern: regexp.MustCompile(`(?i)^\s*9?6\s*[-: ]?\s*.*?(?:advan.*?direct|power.*?attorney)`), Label: "96 Advance Directives/Powers of Attorney"},
	{Pattern: regexp.MustCompile(`(?i)^\s*9?7\s*[-: ]?\s*.*?(?:munic.*?legal)`), Label: "97 Municipal Legal Needs"},
	{Pattern: regexp.MustCompile(`(?i)^\s*9?9\s*[-: ]?\s*.*?(?:misc|other)`), Label: "99 Other Miscellaneous"},
}

// LegalProblemDirect maps variant spellings seen in historical exports to
// the standardized label. Keys are matched case-insensitively after
// trimming; this is the fast path that covers the common spellings before
// any regex runs.
var LegalProblemDirect = map[string]string{
	"01 Bankruptcy/Debtor Relief":                 "01 Bankruptcy/Debtor Relief",
	"02 Collection (including Repo/Def/Garnish)":  "02 Collection (including Repo/Def/Garnish)",
	"02 Collect/Repo/Def/Garnsh":                  "02 Collection (including Repo/Def/Garnish)",
	"02 - Collections (Repo, Def., Garn)":         "02 Collection (including Repo/Def/Garnish)",
	"03 Contracts / Warranties":                   "03 Contracts/Warranties",
	"03 Contract/Warranties":                      "03 Contracts/Warranties",
	"04 Collection Practices/Creditor Harassment": "04 Collection Practices/Creditor Harassment",
	"04 Collection Practices / Creditor Harassment":                  "04 Collection Practices/Creditor Harassment",
	"05 Predatory Lending Practices (not mortgages)":                 "05 Predatory Lending Practices (not mortgages)",
	"06 Loans/Installment Purch.":                                    "06 Loans/Installment Purch.",
	"06 Loans/Installment Purchases (Not Collections)":               "06 Loans/Installment Purch.",
	"07 Public Utilities":                                            "07 Public Utilities",
	"08 Unfair and Deceptive Sales and Practices (not real property)": "08 Unfair and Deceptive Sales and Practices (not real property)",
	"08 Unfair and Deceptive Sales Practices (Not Real Property)":     "08 Unfair and Deceptive Sales and Practices (not real property)",
	"09 Other Consumer/Finance":   "09 Other Consumer/Finance",
	"09 Other Consumer / Finance.": "09 Other Consumer/Finance",

	"12 Discipline (including expulsion and suspension)":  "12 Discipline (including expulsion and suspension)",
	"13 Special Education/Learning Disabilities":          "13 Special Education/Learning Disabilities",
	"14 Access (Including Bilingual, Residency, Testing)": "14 Access (Including Bilingual, Residency, Testing)",
	"16 Student Financial Aid":                            "16 Student Financial Aid",
	"19 Other Education":                                  "19 Other Education",

	"21 Employment Discrimination":         "21 Employment Discrimination",
	"22 Wage Claim and other FLSA Issues":  "22 Wage Claim and other FLSA Issues",
	"22 Wage Claims and Other FLSA Issues": "22 Wage Claim and other FLSA Issues",
	"23 EITC (Earned Income Tax Credit)":   "23 EITC (Earned Income Tax Credit)",
	"24 Taxes (not EITC)":                  "24 Taxes (not EITC)",
	"25 Employee Rights":                   "25 Employee Rights",
	"29 Other Employment & Ceta":           "29 Other Employment",
	"29 Other Employment":                  "29 Other Employment",

	"30 Adoption":                          "30 Adoption",
	"31 Custody/Visitation":                "31 Custody/Visitation",
	"31 Custody / Visitation":              "31 Custody/Visitation",
	"32 Divorce/Sep./Annul.":               "32 Divorce/Sep./Annul.",
	"32 Divorce / Sep. / Annul.":           "32 Divorce/Sep./Annul.",
	"33 Adult Guardianship / Conserv.":     "33 Adult Guardianship/Conserv.",
	"33 Adult Guardianship / Conservatorship": "33 Adult Guardianship/Conserv.",
	"34 Name Change":                  "34 Name Change",
	"35 Parental Rights Termin.":      "35 Parental Rights Termin.",
	"35 Parental Rights Termination":  "35 Parental Rights Termin.",
	"36 Paternity":                    "36 Paternity",
	"37 Domestic Abuse":               "37 Domestic Abuse",
	"37 - Domestic Abuse":             "37 Domestic Abuse",
	"38 Support":                      "38 Support",
	"39 Other Family":                 "39 Other Family",

	"41 Delinquent":                            "41 Delinquent",
	"42 Neglected/Abused/Depend.":              "42 Neglected/Abused/Depend.",
	"42 Neglected/Abused/Dependent":            "42 Neglected/Abused/Depend.",
	"43 Emancipation":                          "43 Emancipation",
	"44 Minor Guardian/Conservatorship":        "44 Minor Guardian/Conservatorship",
	"44 Minor Guardianship / Conservatorship":  "44 Minor Guardian/Conservatorship",
	"49 Other Juvenile":                        "49 Other Juvenile",

	"51 Medicaid":                 "51 Medicaid",
	"51 - Medicaid (Tenncare)":    "51 Medicaid",
	"52 Medicare":                 "52 Medicare",
	"53 Goverment Children's Health Insurance Programs":  "53 Government Children's Health Insurance Programs",
	"53 Government Children's Health Insurance Programs": "53 Government Children's Health Insurance Programs",
	"54 Home and Community Based Care":    "54 Home and Community Based Care",
	"55 Private Health Insurance":         "55 Private Health Insurance",
	"56 Long Term Health Care Facilities": "56 Long Term Health Care Facilities",
	"57 State and Local Health":           "57 State and Local Health",
	"59 Other Health":                     "59 Other Health",

	"61 Fed. Subsidized Housing":        "61 Fed. Subsidized Housing",
	"61 Federally Subsidized Housing":   "61 Fed. Subsidized Housing",
	"61 - Federally Subsidized Housing": "61 Fed. Subsidized Housing",
	"62 Homeownership/Real Prop. (not foreclosure)":   "62 Homeownership/Real Prop. (not foreclosure)",
	"62 Homeownership/Real Property (Not Foreclosure)": "62 Homeownership/Real Prop. (not foreclosure)",
	"63 Private Landlord / Tenant":   "63 Private Landlord/Tenant",
	"63 Private Landlord/Tenant":     "63 Private Landlord/Tenant",
	"63 - Private Landlord/Tenant":   "63 Private Landlord/Tenant",
	"64 Public Housing":              "64 Public Housing",
	"65 Mobile Homes":                "65 Mobile Homes",
	"66 Housing Discrimination":      "66 Housing Discrimination",
	"67 Mortgage Foreclosures (not predatory Lending/practices)": "67 Mortgage Foreclosures (not predatory Lending/practices)",
	"68 Mortgage Predatory Lending/Practices":                    "68 Mortgage Predatory Lending/Practices",
	"69 Other Housing": "69 Other Housing",

	"71 TANF":                        "71 TANF",
	"71 - TANF (Families First)":     "71 TANF",
	"72 Social Security (not SSDI)":  "72 Social Security (not SSDI)",
	"73 Food Stamps":                 "73 Food Stamps",
	"73 Food Stamps / Commodities":   "73 Food Stamps",
	"74 SSDI":                        "74 SSDI",
	"75 SSI":                         "75 SSI",
	"76 Unemployment Compensation":   "76 Unemployment Compensation",
	"77 Veterans Benefits":           "77 Veterans Benefits",
	"78 State and Local Income Maintenance": "78 State and Local Income Maintenance",
	"79 Other Income Maintenance":           "79 Other Income Maintenance",
	"79 Other Income Maintenence":           "79 Other Income Maintenance",

	"81 Immigration/Naturalization":   "81 Immigration/Naturalization",
	"81 Immigration / Naturalization": "81 Immigration/Naturalization",
	"82 Mental Health":                "82 Mental Health",
	"84 Disability Rights":            "84 Disability Rights",
	"85 Civil Rights":                 "85 Civil Rights",
	"86 Human Trafficking":            "86 Human Trafficking",
	"87 Expungement":                  "87 Expungement",
	"87 - Expungement":                "87 Expungement",
	"87 Criminal Record Expungement":  "87 Expungement",
	"89 Other Individual Rights":      "89 Other Individual Rights",

	"93 Licenses (Auto and Other)":                     "93 Licenses (Auto and Other)",
	"93 Licenses (Drivers, Occupational, and Others)":  "93 Licenses (Auto and Other)",
	"94 Torts":                                 "94 Torts",
	"95 Wills / Estates":                       "95 Wills/Estates",
	"95 Wills and Estates":                     "95 Wills/Estates",
	"96 Advance Directives/Powers of Attorney": "96 Advance Directives/Powers of Attorney",
	"96 Advanced Directives/Powers of Attorney": "96 Advance Directives/Powers of Attorney",
	"97 Municipal Legal Needs": "97 Municipal Legal Needs",
	"99 Other Miscellaneous":   "99 Other Miscellaneous",
}

// legalProblemDirectFolded indexes LegalProblemDirect by lowercased key for
// case-insensitive lookup.
var legalProblemDirectFolded = func() map[string]string {
	folded := make(map[string]string, len(LegalProblemDirect))
	for variant, label := range LegalProblemDirect {
		folded[strings.ToLower(variant)] = label
	}
	return folded
}()

// LookupLegalProblemDirect resolves a trimmed raw value against the direct
// table, case-insensitively.
func LookupLegalProblemDirect(value string) (string, bool) {
	label, ok := legalProblemDirectFolded[strings.ToLower(value)]
	return label, ok
}

// LegalProblemByCode is the final numeric fallback: a bare two-digit code
// resolves to its band label even when no keyword is present.
var LegalProblemByCode = func() map[string]string {
	byCode := make(map[string]string, len(LegalProblemPatterns))
	for _, rule := range LegalProblemPatterns {
		byCode[rule.Label[:2]] = rule.Label
	}
	return byCode
}()

// LegalProblemCleanup corrects near-duplicate labels that slip past the
// direct and regex tiers, all case variants in parenthetical qualifiers.
var LegalProblemCleanup = map[string]string{
	"08 Unfair and Deceptive Sales and Practices (Not Real Property)": "08 Unfair and Deceptive Sales and Practices (not real property)",
	"24 Taxes (Not EITC)":                           "24 Taxes (not EITC)",
	"62 Homeownership/Real Prop. (Not Foreclosure)": "62 Homeownership/Real Prop. (not foreclosure)",
	"67 Mortgage Foreclosures (Not Predatory Lending/Practices)": "67 Mortgage Foreclosures (not predatory Lending/practices)",
	"72 Social Security (Not SSDI)":                 "72 Social Security (not SSDI)",
	"05 Predatory Lending Practices (Not Mortgages)": "05 Predatory Lending Practices (not mortgages)",
}
