package locale

var arabic = &Set{
	Code: "ar",

	FirstNamesFemale: []string{
		"آية", "أمل", "إيمان", "جميلة", "حنان", "خديجة", "دنيا", "رانيا",
		"رجاء", "زينب", "سارة", "سلمى", "سميرة", "شيماء", "صفاء",
		"عائشة", "فاطمة", "كريمة", "لطيفة", "ليلى", "مريم", "نادية",
		"نور", "هدى",
	},
	FirstNamesMale: []string{
		"أحمد", "أمين", "إبراهيم", "إدريس", "بلال", "جمال", "حسن",
		"حمزة", "خالد", "رشيد", "زكرياء", "سعيد", "سمير", "طارق",
		"عبد الله", "عمر", "عثمان", "كريم", "محمد", "مصطفى", "مهدي",
		"نبيل", "يوسف", "ياسين",
	},
	LastNames: []string{
		"الأمراني", "الإدريسي", "البقالي", "التازي", "الحسني", "الخطيب",
		"الرامي", "الزياني", "السقاط", "الشرقاوي", "الصنهاجي", "الطاهري",
		"العلوي", "الفاسي", "الفيلالي", "القادري", "الكتاني", "المراكشي",
		"المنصوري", "الناصري", "النجار", "الوزاني", "بناني", "بنجلون",
	},

	PhoneFormats: []string{
		"06########",
		"+212 6########",
		"05########",
	},

	Cities: []string{
		"أغادير", "أصيلة", "الجديدة", "الدار البيضاء", "الرباط",
		"السعيدية", "الصويرة", "العيون", "القنيطرة", "المحمدية",
		"الناظور", "تطوان", "طنجة", "فاس", "مراكش", "مكناس", "وجدة",
		"ورزازات", "سلا", "خريبكة",
	},
	Streets: []string{
		"زنقة الأطلس", "زنقة السلام", "زنقة المسيرة", "زنقة النخيل",
		"شارع الاستقلال", "شارع الجيش الملكي", "شارع الحسن الثاني",
		"شارع المقاومة", "شارع محمد الخامس", "شارع محمد السادس",
		"طريق الدار البيضاء", "طريق الرباط",
	},
	StreetFormats:  []string{"{building} {street}"},
	AddressFormats: []string{"{street}، {city} {zip}"},
	ZipFormats:     []string{"#####"},
	Countries: []string{
		"الأردن", "الإمارات", "الجزائر", "السعودية", "السنغال", "العراق",
		"الكويت", "المغرب", "اليمن", "تونس", "سوريا", "عمان", "فلسطين",
		"قطر", "لبنان", "ليبيا", "مصر", "موريتانيا",
	},

	FreeEmailDomains: []string{"gmail.com", "hotmail.com", "yahoo.com", "menara.ma"},
	TLDs:             []string{"ma", "com", "net", "org"},
}
