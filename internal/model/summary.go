package model

// Summary holds the scalar metrics shown in the dashboard tiles.
type Summary struct {
	MeanSalary        float64 `json:"mean_salary"`
	MaxSalary         float64 `json:"max_salary"`
	Count             int     `json:"count"`
	MostFrequentTitle string  `json:"most_frequent_title"`
}

// TitleMean is the mean salary of one job title.
type TitleMean struct {
	JobTitle   string  `json:"cargo"`
	MeanSalary float64 `json:"usd"`
}

// CategoryCount is the number of rows in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CountryMean is the mean salary of rows residing in one country.
type CountryMean struct {
	CountryISO3 string  `json:"residencia_iso3"`
	MeanSalary  float64 `json:"usd"`
	Count       int     `json:"count"`
}

// HistogramBin is one equal-width salary bucket, [Low, High) except the last which is closed.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}
