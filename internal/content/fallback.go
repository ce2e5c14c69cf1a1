package content

import "github.com/omoji-tb/caresse-wedding/internal/photo"

// Built-in content used when no YAML file is present for a language. The
// records below intentionally mix both upstream sizing conventions.
var fallbackPhotos = []photo.Record{
	{ID: "hero-terrace", Title: "Sunset over the terrace", Tag: "venue", URL: "https://cache.caresseresort.example/is/image/caresse/terrace-sunset:Wide-Hor"},
	{ID: "pool-dusk", Title: "The pool at dusk", Tag: "venue", URL: "https://cache.caresseresort.example/is/image/caresse/pool-dusk:Wide-Hor"},
	{ID: "beach-walk", Title: "Beach walkway", Tag: "venue", URL: "https://media.caresseresort.example/content/dam/resort/beach-walkway.jpg"},
	{ID: "garden-arch", Title: "Garden ceremony arch", Tag: "ceremony", URL: "https://cache.caresseresort.example/is/image/caresse/garden-arch:Tall"},
	{ID: "ballroom", Title: "Reception ballroom", Tag: "reception", URL: "https://media.caresseresort.example/content/dam/resort/ballroom.jpg"},
	{ID: "suite-view", Title: "Suite with sea view", Tag: "stay", URL: "https://cache.caresseresort.example/is/image/caresse/suite-view:Wide-Hor"},
	{ID: "breakfast", Title: "Breakfast by the water", Tag: "stay", URL: "https://media.caresseresort.example/content/dam/resort/breakfast-terrace.jpg"},
	{ID: "marina", Title: "Bodrum marina", Tag: "around", URL: "https://media.caresseresort.example/content/dam/resort/marina.jpg"},
}

var fallbackSites = map[string]Site{
	"en": {
		Title:    "Sahar & Daniel",
		Tagline:  "are getting married",
		Couple:   Couple{Partner1: "Sahar", Partner2: "Daniel"},
		DateCopy: "June 12–14 at Caresse, Bodrum",
		Venue: Venue{
			Name: "Caresse, a Luxury Collection Resort",
			City: "Bodrum, Türkiye",
			URL:  "https://www.caresse.com.tr/",
		},
		Cards: []Card{
			{Icon: "dress", Title: "Dress code", Body: "Summer formal. The ceremony is on grass, so consider block heels."},
			{Icon: "gift", Title: "Gifts", Body: "Your presence is the present. If you insist, a note in the guest book means the most."},
			{Icon: "sun", Title: "Weather", Body: "Expect warm evenings around 28°C. The reception moves indoors after midnight."},
		},
		Days: []Day{
			{Label: "Friday", Date: "June 12", Events: []Event{
				{Time: "17:00", Title: "Welcome drinks", Detail: "Poolside bar"},
				{Time: "20:00", Title: "Persian dinner", Detail: "Casual, on the terrace"},
			}},
			{Label: "Saturday", Date: "June 13", Events: []Event{
				{Time: "16:30", Title: "Ceremony", Detail: "Garden arch"},
				{Time: "18:00", Title: "Cocktails", Detail: "Beach walkway"},
				{Time: "20:00", Title: "Reception & dancing", Detail: "Ballroom"},
			}},
			{Label: "Sunday", Date: "June 14", Events: []Event{
				{Time: "11:00", Title: "Farewell brunch", Detail: "Breakfast terrace"},
			}},
		},
		Travel: []Note{
			{Title: "Getting there", Body: "Fly into **Milas–Bodrum (BJV)**. The resort is a 40-minute drive; a shuttle runs for guests on Friday afternoon.\n\n- Airport taxis take cards\n- Tell the driver *Caresse, Asarlık mevkii*"},
			{Title: "Staying", Body: "A room block is reserved under **Sahar & Daniel** until May 1. Nearby options in Gümbet work too — the wedding shuttle stops there."},
		},
		Photos: fallbackPhotos,
	},
	"fa": {
		Title:    "سحر و دانیال",
		Tagline:  "ازدواج می‌کنند",
		Couple:   Couple{Partner1: "سحر", Partner2: "دانیال"},
		DateCopy: "۱۲ تا ۱۴ ژوئن در کارس، بدروم",
		Venue: Venue{
			Name: "هتل کارس، مجموعه لوکس",
			City: "بدروم، ترکیه",
			URL:  "https://www.caresse.com.tr/",
		},
		Cards: []Card{
			{Icon: "dress", Title: "پوشش", Body: "رسمی تابستانی. مراسم روی چمن برگزار می‌شود؛ کفش پاشنه‌پهن راحت‌تر است."},
			{Icon: "gift", Title: "هدیه", Body: "حضور شما بهترین هدیه است. اگر اصرار دارید، یادداشتی در دفتر مهمانان از همه چیز باارزش‌تر است."},
			{Icon: "sun", Title: "آب‌وهوا", Body: "شب‌ها حدود ۲۸ درجه و گرم است. جشن بعد از نیمه‌شب به سالن منتقل می‌شود."},
		},
		Days: []Day{
			{Label: "جمعه", Date: "۱۲ ژوئن", Events: []Event{
				{Time: "۱۷:۰۰", Title: "نوشیدنی خوش‌آمدگویی", Detail: "بار کنار استخر"},
				{Time: "۲۰:۰۰", Title: "شام ایرانی", Detail: "غیررسمی، روی تراس"},
			}},
			{Label: "شنبه", Date: "۱۳ ژوئن", Events: []Event{
				{Time: "۱۶:۳۰", Title: "مراسم عقد", Detail: "طاق باغ"},
				{Time: "۱۸:۰۰", Title: "پذیرایی", Detail: "مسیر ساحلی"},
				{Time: "۲۰:۰۰", Title: "جشن و پایکوبی", Detail: "سالن اصلی"},
			}},
			{Label: "یکشنبه", Date: "۱۴ ژوئن", Events: []Event{
				{Time: "۱۱:۰۰", Title: "صبحانه خداحافظی", Detail: "تراس صبحانه"},
			}},
		},
		Travel: []Note{
			{Title: "رسیدن به محل", Body: "به فرودگاه **میلاس–بدروم (BJV)** پرواز کنید. هتل حدود ۴۰ دقیقه فاصله دارد و جمعه بعدازظهر سرویس رفت‌وآمد برقرار است."},
			{Title: "اقامت", Body: "تا اول مه اتاق‌هایی به نام **سحر و دانیال** رزرو شده است. هتل‌های گومبت هم گزینهٔ خوبی هستند؛ سرویس عروسی آنجا توقف دارد."},
		},
		Photos: fallbackPhotos,
	},
}

// fallbackSite returns the built-in table for lang, defaulting to English.
func fallbackSite(lang string) Site {
	if s, ok := fallbackSites[normalizeLang(lang)]; ok {
		return s
	}
	return fallbackSites["en"]
}
