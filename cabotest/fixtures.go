package cabotest

// WinterWheat returns a realistic winter wheat crop file exercising every
// construct the format allows: a multi-line header, a quoted string holding
// commas, integer and float scalars, a table series continued across lines
// with trailing commas and inline comments, comment lines inside the body,
// and two definitions sharing one line behind a ';'.
//
// It parses to six parameters: CROP_NO (int64 99), TBASEM (float64 -10.0),
// NMINSO (float64 0.011), NMINVE (float64 0.003), CRPNAM (string), and
// DTSMTB ([]float64 with six values).
func WinterWheat() string {
	return File(
		"** CROP DATA FILE for use with WOFOST Version 5.4, June 1992",
		"**",
		"** WHEAT, WINTER 102",
		"** Regions: Ireland, central en southern UK (R72-R79),",
		"**          Netherlands (not R47), northern Germany (R11-R14)",
		"CRPNAM='Winter wheat 102, Ireland, N-U.K., Netherlands, N-Germany'",
		"CROP_NO=99",
		"TBASEM   = -10.0    ! lower threshold temp. for emergence [cel]",
		"DTSMTB   =   0.00,    0.00,     ! daily increase in temp. sum",
		"            30.00,   30.00,     ! as function of av. temp. [cel; cel d]",
		"            45.00,   30.00",
		"** maximum and minimum concentrations of N, P, and K",
		"** in storage organs        in vegetative organs [kg kg-1]",
		"NMINSO   =   0.0110 ;       NMINVE   =   0.0030",
	)
}

// WinterWheatHeader returns the header block WinterWheat parses to, in
// order, '*' markers included.
func WinterWheatHeader() []string {
	return []string{
		"** CROP DATA FILE for use with WOFOST Version 5.4, June 1992",
		"**",
		"** WHEAT, WINTER 102",
		"** Regions: Ireland, central en southern UK (R72-R79),",
		"**          Netherlands (not R47), northern Germany (R11-R14)",
	}
}
