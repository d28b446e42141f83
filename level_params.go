package seqbit

// encodeLevelParams holds internal tuning parameters for one reference
// encoder level. All fields are unexported; the type is used only inside
// the package.
type encodeLevelParams struct {
	minFillRun uint // shortest FILL run worth breaking a NOISE span for
}

// fixedEncodeLevels defines parameters for encoder levels 2–9, indexed by
// level. Levels 0/1 use a fixed minFillRun of 4 without consulting this
// table. Higher levels tolerate shorter fill runs, trading a few extra
// control bytes in exchange for fewer noise bytes.
var fixedEncodeLevels = [9]encodeLevelParams{
	{4},
	{4},
	{4},
	{3},
	{2},
	{2},
	{1},
	{1},
	{1},
}

// levelParamsFor clamps level into [0,8] and returns the matching entry.
func levelParamsFor(level int) encodeLevelParams {
	level = max(level, 0)
	level = min(level, 8)
	return fixedEncodeLevels[level]
}
