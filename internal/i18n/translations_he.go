package i18n

var hebrew = map[string]string{
	AppTitle:         "מחולל מצגות: תכנות מונחה עצמים ב-C#",
	AppSubtitle:      "יחידה 5 לפי תכנית הלימודים של משרד החינוך",
	WelcomeHeading:   "ברוכים הבאים למחולל המצגות",
	WelcomeBody:      "אפליקציה זו תיצור עבורכם מצגת שלב-אחר-שלב כדי ללמד את יסודות תכנות מונחה עצמים בשפת C#, בדיוק לפי תכנית הלימודים. לחצו על הכפתור כדי להתחיל וליצור את השקופית הראשונה.",
	WelcomeStart:     "התחל ביצירת המצגת",
	NavPrev:          "הקודם",
	NavNext:          "הבא",
	NavGenerating:    "יוצר...",
	ExportButton:     "ייצא ל-PowerPoint",
	ExportExporting:  "מייצא...",
	ExportNoSlides:   "יש ליצור לפחות שקופית אחת כדי לייצא.",
	ExportPreparing:  "מכין את המצגת לייצוא...",
	ExportSucceeded:  "המצגת יוצאה בהצלחה!",
	ExportFailed:     "אירעה שגיאה בייצוא המצגת.",
	ExportDownload:   "הורדת הקובץ",
	GenerationFailed: "שגיאה ביצירת השקופית. אנא נסה שוב.",
	LoadingTopic:     "יוצר שקופית בנושא:",
	ErrorHeading:     "אופס, משהו השתבש",
	RetryButton:      "נסה שוב",
	ReadyPlaceholder: "מוכן להתחיל...",
	SlideCounter:     "שקופית %d מתוך %d",
	Footer:           "© %s %s",

	MissingKeyTitle: "שגיאה: מפתח API חסר",
	MissingKeyLine1: "נראה שמפתח ה-API של Gemini אינו מוגדר.",
	MissingKeyLine2: "אנא ודא שהגדרת את מפתח ה-API בסביבת הפרויקט שלך ורענן את הדף.",
	FailureTitle:    "שגיאה ביצירת התוכן",
	FailureLine1:    "אירעה שגיאה בעת יצירת תוכן השקופית.",
	FailureLine2:    "אנא בדוק את חיבור הרשת ואת מפתח ה-API ונסה שוב.",
}
