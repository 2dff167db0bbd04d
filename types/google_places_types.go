package types

type GooglePlacesSearchResponse struct {
	HTMLAttributions []string            `json:"html_attributions"`
	NextPageToken    string              `json:"next_page_token"`
	Results          []GooglePlaceResult `json:"results"`
	Status           string              `json:"status"`
	ErrorMessage     string              `json:"error_message,omitempty"`
}

type GooglePlaceResult struct {
	BusinessStatus   *string       `json:"business_status,omitempty"`
	FormattedAddress string        `json:"formatted_address"`
	Geometry         *Geometry     `json:"geometry,omitempty"`
	Name             string        `json:"name"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
	Photos           []Photo       `json:"photos,omitempty"`
	PlaceID          string        `json:"place_id"`
	PriceLevel       *int          `json:"price_level,omitempty"`
	Rating           *float64      `json:"rating,omitempty"`
	Types            []string      `json:"types"`
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`
	Vicinity         *string       `json:"vicinity,omitempty"`
}

type GooglePlaceDetailsResponse struct {
	Result       *GooglePlaceDetails `json:"result"`
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
}

// GooglePlaceDetails carries the subset of the Place Details payload the
// service consumes. Any other field on the wire is ignored.
type GooglePlaceDetails struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	FormattedPhone   string        `json:"formatted_phone_number"`
	Website          string        `json:"website"`
	Rating           *float64      `json:"rating,omitempty"`
	UserRatingsTotal *int          `json:"user_ratings_total,omitempty"`
	PriceLevel       *int          `json:"price_level,omitempty"`
	Types            []string      `json:"types"`
	Geometry         *Geometry     `json:"geometry,omitempty"`
	Photos           []Photo       `json:"photos,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
}

type GooglePlacesSuggestionsResponse struct {
	Predictions  []PlacePrediction `json:"predictions"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

type PlacePrediction struct {
	Description          string               `json:"description"`
	PlaceID              string               `json:"place_id"`
	StructuredFormatting StructuredFormatting `json:"structured_formatting"`
	Types                []string             `json:"types"`
}

type StructuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

type Geometry struct {
	Location Location `json:"location"`
	Viewport *Viewport `json:"viewport,omitempty"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Viewport struct {
	Northeast Location `json:"northeast"`
	Southwest Location `json:"southwest"`
}

type OpeningHours struct {
	OpenNow *bool `json:"open_now,omitempty"`
}

type Photo struct {
	Height           int      `json:"height"`
	HTMLAttributions []string `json:"html_attributions"`
	PhotoReference   string   `json:"photo_reference"`
	Width            int      `json:"width"`
}
