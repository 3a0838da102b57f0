// Package translations holds the static string catalogs for the site locales.
//
// Catalogs are plain maps compiled into the binary. Lookups fall back to
// English, then to the key itself, so a missing entry never renders blank.
package translations

// Locale identifies one of the supported site languages.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleFrench  Locale = "fr"
	LocaleArabic  Locale = "ar"
	LocaleSpanish Locale = "es"
)

// Direction is the document text direction derived from the locale.
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// Supported lists every selectable locale, in display order.
var Supported = []Locale{LocaleEnglish, LocaleFrench, LocaleArabic, LocaleSpanish}

// IsSupported reports whether the locale is one of the selectable languages.
func IsSupported(locale Locale) bool {
	for _, l := range Supported {
		if l == locale {
			return true
		}
	}
	return false
}

// DirectionOf returns the text direction for a locale. Arabic is the only
// right-to-left language on the site; direction is derived, never stored.
func DirectionOf(locale Locale) Direction {
	if locale == LocaleArabic {
		return DirectionRTL
	}
	return DirectionLTR
}

// T resolves a translation key for a locale, falling back to English and
// finally to the key itself.
func T(locale Locale, key string) string {
	if catalog, ok := catalogs[locale]; ok {
		if value, ok := catalog[key]; ok {
			return value
		}
	}
	if value, ok := catalogs[LocaleEnglish][key]; ok {
		return value
	}
	return key
}

// Catalog returns the full catalog for a locale (English entries fill gaps).
func Catalog(locale Locale) map[string]string {
	base := catalogs[LocaleEnglish]
	merged := make(map[string]string, len(base))
	for k, v := range base {
		merged[k] = v
	}
	if locale != LocaleEnglish {
		for k, v := range catalogs[locale] {
			merged[k] = v
		}
	}
	return merged
}

var catalogs = map[Locale]map[string]string{
	LocaleEnglish: {
		"nav.home":     "Home",
		"nav.about":    "About",
		"nav.projects": "Projects",
		"nav.skills":   "Skills",
		"nav.contact":  "Contact",

		"hero.greeting":    "Hello, I am",
		"hero.role":        "Full Stack Developer",
		"hero.description": "I build exceptional digital experiences that blend creativity with technical expertise.",
		"hero.cta":         "View My Work",

		"about.title":    "About Me",
		"about.subtitle": "My journey & experience",

		"projects.title":    "Projects",
		"projects.subtitle": "Some things I've built",
		"projects.viewAll":  "View All Projects",
		"projects.viewLive": "Live Demo",
		"projects.viewCode": "Source Code",

		"skills.title":    "Skills",
		"skills.subtitle": "What I bring to the table",

		"contact.title":       "Contact",
		"contact.subtitle":    "Get in touch",
		"contact.formName":    "Name",
		"contact.formEmail":   "Email",
		"contact.formSubject": "Subject",
		"contact.formMessage": "Message",
		"contact.formSubmit":  "Send Message",
		"contact.formSuccess": "Message sent successfully!",
		"contact.formError":   "There was an error sending your message. Please try again.",

		"footer.copyright": "All rights reserved",

		"a11y.skipToContent": "Skip to content",
		"a11y.darkMode":      "Dark Mode",
		"a11y.lightMode":     "Light Mode",

		"scrollToTop": "Scroll to top",
	},
	LocaleFrench: {
		"nav.home":     "Accueil",
		"nav.about":    "À Propos",
		"nav.projects": "Projets",
		"nav.skills":   "Compétences",
		"nav.contact":  "Contact",

		"hero.greeting":    "Bonjour, je suis",
		"hero.role":        "Développeur Full Stack",
		"hero.description": "Je construis des expériences numériques exceptionnelles qui associent créativité et expertise technique.",
		"hero.cta":         "Voir mon travail",

		"about.title":    "À Propos",
		"about.subtitle": "Mon parcours et expérience",

		"projects.title":    "Projets",
		"projects.subtitle": "Ce que j'ai construit",
		"projects.viewAll":  "Voir tous les projets",
		"projects.viewLive": "Démo en direct",
		"projects.viewCode": "Code source",

		"skills.title":    "Compétences",
		"skills.subtitle": "Ce que j'apporte",

		"contact.title":       "Contact",
		"contact.subtitle":    "Entrer en contact",
		"contact.formName":    "Nom",
		"contact.formEmail":   "Email",
		"contact.formSubject": "Sujet",
		"contact.formMessage": "Message",
		"contact.formSubmit":  "Envoyer le message",
		"contact.formSuccess": "Message envoyé avec succès !",
		"contact.formError":   "Une erreur s'est produite lors de l'envoi de votre message. Veuillez réessayer.",

		"footer.copyright": "Tous droits réservés",

		"a11y.skipToContent": "Passer au contenu",
		"a11y.darkMode":      "Mode sombre",
		"a11y.lightMode":     "Mode clair",

		"scrollToTop": "Retour en haut",
	},
	LocaleArabic: {
		"nav.home":     "الرئيسية",
		"nav.about":    "عني",
		"nav.projects": "المشاريع",
		"nav.skills":   "المهارات",
		"nav.contact":  "اتصل بي",

		"hero.greeting":    "مرحباً، أنا",
		"hero.role":        "مطور متكامل",
		"hero.description": "أبني تجارب رقمية استثنائية تمزج بين الإبداع والخبرة التقنية.",
		"hero.cta":         "شاهد أعمالي",

		"about.title":    "عني",
		"about.subtitle": "رحلتي وخبرتي",

		"projects.title":    "المشاريع",
		"projects.subtitle": "بعض ما قمت ببنائه",
		"projects.viewAll":  "عرض كل المشاريع",
		"projects.viewLive": "عرض مباشر",
		"projects.viewCode": "الكود المصدري",

		"skills.title":    "المهارات",
		"skills.subtitle": "ما أقدمه",

		"contact.title":       "اتصل بي",
		"contact.subtitle":    "تواصل معي",
		"contact.formName":    "الاسم",
		"contact.formEmail":   "البريد الإلكتروني",
		"contact.formSubject": "الموضوع",
		"contact.formMessage": "الرسالة",
		"contact.formSubmit":  "إرسال الرسالة",
		"contact.formSuccess": "تم إرسال الرسالة بنجاح!",
		"contact.formError":   "حدث خطأ أثناء إرسال رسالتك. يرجى المحاولة مرة أخرى.",

		"footer.copyright": "جميع الحقوق محفوظة",

		"a11y.skipToContent": "تخطي إلى المحتوى",
		"a11y.darkMode":      "الوضع الداكن",
		"a11y.lightMode":     "الوضع الفاتح",

		"scrollToTop": "العودة إلى الأعلى",
	},
	LocaleSpanish: {
		"nav.home":     "Inicio",
		"nav.about":    "Sobre mí",
		"nav.projects": "Proyectos",
		"nav.skills":   "Habilidades",
		"nav.contact":  "Contacto",

		"hero.greeting":    "Hola, soy",
		"hero.role":        "Desarrollador Full Stack",
		"hero.description": "Construyo experiencias digitales excepcionales que combinan creatividad y experiencia técnica.",
		"hero.cta":         "Ver mi trabajo",

		"about.title":    "Sobre mí",
		"about.subtitle": "Mi trayectoria y experiencia",

		"projects.title":    "Proyectos",
		"projects.subtitle": "Algunas cosas que he construido",
		"projects.viewAll":  "Ver todos los proyectos",
		"projects.viewLive": "Demo en vivo",
		"projects.viewCode": "Código fuente",

		"skills.title":    "Habilidades",
		"skills.subtitle": "Lo que aporto",

		"contact.title":       "Contacto",
		"contact.subtitle":    "Ponte en contacto",
		"contact.formName":    "Nombre",
		"contact.formEmail":   "Correo electrónico",
		"contact.formSubject": "Asunto",
		"contact.formMessage": "Mensaje",
		"contact.formSubmit":  "Enviar mensaje",
		"contact.formSuccess": "¡Mensaje enviado con éxito!",
		"contact.formError":   "Hubo un error al enviar tu mensaje. Por favor, inténtalo de nuevo.",

		"footer.copyright": "Todos los derechos reservados",

		"a11y.skipToContent": "Saltar al contenido",
		"a11y.darkMode":      "Modo oscuro",
		"a11y.lightMode":     "Modo claro",

		"scrollToTop": "Volver arriba",
	},
}
