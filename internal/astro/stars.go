package astro

// Star is a background star: J2000 position plus apparent magnitude
// (lower = brighter). Background stars are decoration only, so no names
// or identifiers are carried.
type Star struct {
	RAdeg  float64
	DecDeg float64
	Mag    float64
}

// BrightStars returns the built-in background catalog (~90 stars down
// to roughly magnitude 3), pinned to the outer star shell. Values are
// from the Yale Bright Star Catalog.
func BrightStars() []Star {
	return brightStars
}

var brightStars = []Star{
	// Brightest (mag < 0.5)
	{101.287, -16.716, -1.46},
	{95.988, -52.696, -0.74},
	{213.915, 19.182, -0.05},
	{279.235, 38.784, 0.03},
	{79.172, 45.998, 0.08},
	{78.634, -8.202, 0.13},
	{114.826, 5.225, 0.34},
	{24.429, -57.237, 0.46},

	// mag 0.5-1.0
	{88.793, 7.407, 0.50},
	{210.956, -60.373, 0.61},
	{297.696, 8.868, 0.76},
	{186.650, -63.099, 0.76},
	{68.980, 16.509, 0.85},
	{247.352, -26.432, 0.96},
	{201.298, -11.161, 0.97},

	// mag 1.0-1.5
	{116.329, 28.026, 1.14},
	{344.413, -29.622, 1.16},
	{310.358, 45.280, 1.25},
	{191.930, -59.689, 1.25},
	{152.093, 11.967, 1.35},
	{104.656, -28.972, 1.50},

	// mag 1.5-2.0
	{113.650, 31.889, 1.58},
	{187.791, -57.113, 1.63},
	{263.402, -37.104, 1.63},
	{81.283, 6.350, 1.64},
	{81.573, 28.608, 1.65},
	{138.300, -69.717, 1.68},
	{84.053, -1.202, 1.69},
	{332.058, -46.961, 1.74},
	{85.190, -1.943, 1.77},
	{193.507, 55.960, 1.77},
	{165.932, 61.751, 1.79},
	{51.081, 49.861, 1.79},
	{107.098, -26.393, 1.84},
	{276.043, -34.384, 1.85},
	{125.629, -59.509, 1.86},
	{206.885, 49.313, 1.86},
	{89.882, 44.948, 1.90},
	{252.166, -69.028, 1.92},
	{99.428, 16.399, 1.93},
	{306.412, -56.735, 1.94},
	{131.176, -54.709, 1.96},
	{95.675, -17.956, 1.98},

	// mag 2.0-2.5
	{141.897, -8.659, 2.00},
	{31.793, 23.463, 2.00},
	{37.954, 89.264, 2.02},
	{10.897, -17.987, 2.02},
	{283.816, -26.297, 2.02},
	{200.981, 54.925, 2.04},
	{17.433, 35.621, 2.05},
	{2.097, 29.091, 2.06},
	{211.671, -36.370, 2.06},
	{146.463, 19.842, 2.08},
	{222.676, 74.156, 2.08},
	{263.734, 12.560, 2.08},
	{86.939, -9.670, 2.09},
	{47.042, 40.957, 2.12},
	{177.265, 14.572, 2.13},
	{190.379, -48.960, 2.17},
	{136.999, -43.433, 2.21},
	{83.002, -0.299, 2.23},
	{233.672, 26.715, 2.23},
	{305.557, 40.257, 2.23},
	{269.152, 51.489, 2.23},
	{10.127, 56.537, 2.23},
	{120.896, -40.003, 2.25},
	{139.273, -59.275, 2.25},
	{2.295, 59.150, 2.27},
	{254.655, -34.293, 2.29},
	{240.083, -22.622, 2.32},
	{165.460, 56.382, 2.37},
	{221.247, 27.074, 2.37},
	{326.046, 9.875, 2.39},
	{6.571, -42.306, 2.38},
	{265.622, -39.030, 2.41},
	{345.944, 28.083, 2.42},
	{257.595, -15.725, 2.43},
	{178.458, 53.695, 2.44},
	{111.024, -29.303, 2.45},
	{14.177, 60.717, 2.47},
	{140.528, -55.011, 2.47},
	{311.553, 33.970, 2.48},
	{346.190, 15.205, 2.49},

	// mag 2.5-3.0 (dim fill)
	{319.645, 62.586, 2.51},
	{168.527, 20.524, 2.56},
	{83.183, -17.822, 2.58},
	{183.952, -17.542, 2.59},
	{229.252, -9.383, 2.61},
	{241.359, -19.805, 2.62},
	{28.660, 20.808, 2.64},
	{84.912, -34.074, 2.64},
	{236.067, 6.426, 2.65},
	{188.597, -23.397, 2.65},
	{75.492, 33.166, 2.69},
	{296.565, 10.613, 2.72},
	{222.720, -16.042, 2.75},
	{190.415, -1.449, 2.74},
	{262.608, 52.301, 2.79},
	{76.963, -5.086, 2.79},
	{194.007, 38.318, 2.81},
	{195.544, 10.959, 2.83},
	{82.061, -20.759, 2.84},
	{56.871, 24.105, 2.87},
	{95.740, 22.513, 2.88},
	{111.788, 8.289, 2.90},
	{322.890, -5.571, 2.91},
	{187.466, -16.515, 2.95},
	{331.446, -0.320, 2.96},
	{230.182, 71.834, 3.00},
}
