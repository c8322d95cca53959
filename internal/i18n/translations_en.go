package i18n

var english = map[string]string{
	AppTitle:         "Presentation Generator: Object-Oriented Programming in C#",
	AppSubtitle:      "Unit 5 of the national computer science curriculum",
	WelcomeHeading:   "Welcome to the presentation generator",
	WelcomeBody:      "This app builds a step-by-step presentation that teaches the fundamentals of object-oriented programming in C#, following the curriculum. Press the button to start and generate the first slide.",
	WelcomeStart:     "Start the presentation",
	NavPrev:          "Previous",
	NavNext:          "Next",
	NavGenerating:    "Generating...",
	ExportButton:     "Export to PowerPoint",
	ExportExporting:  "Exporting...",
	ExportNoSlides:   "Generate at least one slide before exporting.",
	ExportPreparing:  "Preparing the presentation for export...",
	ExportSucceeded:  "The presentation was exported successfully!",
	ExportFailed:     "An error occurred while exporting the presentation.",
	ExportDownload:   "Download file",
	GenerationFailed: "Error generating the slide. Please try again.",
	LoadingTopic:     "Generating a slide about:",
	ErrorHeading:     "Oops, something went wrong",
	RetryButton:      "Try again",
	ReadyPlaceholder: "Ready to start...",
	SlideCounter:     "Slide %d of %d",
	Footer:           "© %s %s",

	MissingKeyTitle: "Error: API key missing",
	MissingKeyLine1: "The content provider API key does not appear to be configured.",
	MissingKeyLine2: "Set the API key in your environment or config file and reload the page.",
	FailureTitle:    "Error generating content",
	FailureLine1:    "An error occurred while generating the slide content.",
	FailureLine2:    "Check your network connection and API key, then try again.",
}
