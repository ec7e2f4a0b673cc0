package charts

// palette is the qualitative colour sequence used for pie slices and scatter series.
var palette = []string{
	"#636EFA",
	"#EF553B",
	"#00CC96",
	"#AB63FA",
	"#FFA15A",
	"#19D3F3",
	"#FF6692",
	"#B6E880",
	"#FF97FF",
	"#FECB52",
}

const (
	SUCCESS_COLOUR = "#00CC96"
	FAILURE_COLOUR = "#EF553B"
)

func colour(i int) string {
	return palette[i%len(palette)]
}
