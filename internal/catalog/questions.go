package catalog

// Fagprove is the full creative-brief assessment.
var Fagprove = &Variant{
	ID:            TabFagprove,
	Heading:       "Fagprøve – svar",
	Focus:         "lys/seriøs corporate",
	CustomerTypes: []CustomerType{Cafe, Hotell, Museum, Skole, Gym, Dyreklinikk},
	AIDisclosure:  true,
	Sections: []Section{
		{
			Heading: "Kreativ brief",
			Questions: []Question{
				{"bakgrunn", "Bakgrunn / problem", "Beskriv situasjonen: hva er problemet eller behovet kunden har i sosiale medier? Svar konkret."},
				{"mal", "Mål og ønsket effekt", "Hva skal kampanjen oppnå (målbare mål/KPI-er der det passer)?"},
				{"malgruppe", "Målgruppe", "Hvem er målgruppen(e), og hva kjennetegner dem (atferd, behov, barrierer)?"},
				{"innsikt", "Brukerinnsikt", "Hvilke metoder vil du bruke for å skaffe brukerinnsikt, og hvordan vil innsikten styre valgene dine?"},
				{"budskap", "Budskap", "Formuler hovedbudskapet i 1–2 setninger. Hva skal publikum sitte igjen med?"},
				{"tone", "Tone / profil", "Beskriv tone of voice og visuell retning (lys, seriøs, corporate)."},
				{"ideutvikling", "Idéutvikling", "Beskriv hvilke metoder du bruker for idéutvikling (f.eks. moodboard, skisser, prototyper, testing)."},
				{"pitch", "Pitch", "Skriv en pitch (maks 10 setninger): konsept, format, hvorfor det passer målgruppen, forventet effekt."},
			},
		},
		{
			Heading: "Kanaler og leveranser",
			Questions: []Question{
				{"kanalvalg", "Kanalvalg", "Hvilke plattformer velger du og hvorfor? (Instagram/TikTok/YouTube Shorts/LinkedIn m.fl.)"},
				{"leveranseHoved", "Leveranse 1: Hovedproduksjon", "Beskriv hovedproduksjonen (60–90 sek): innhold, dramaturgi, CTA og hvordan den løser målet."},
				{"leveransePlattform1", "Leveranse 2: Plattformversjon 1", "Beskriv en 9:16 versjon (15–30 sek) for Reels/Shorts/TikTok: hook, teksting, tempo."},
				{"leveransePlattform2", "Leveranse 3: Plattformversjon 2", "Beskriv en ekstra kort variant (6–12 sek) eller 1:1/9:16: hva er budskapet i første sekund?"},
			},
		},
		{
			Heading: "Produksjon",
			Questions: []Question{
				{"produksjonsplan", "Produksjonsplan", "Lag en gjennomførbar plan (preprod → opptak → post → publisering) med roller og sjekklister."},
				{"budsjett", "Budsjett / ressursbehov", "Kartlegg ressursbehov og lag et realistisk mini-budsjett (tid, utstyr, musikk/stock, reise)."},
				{"opptak", "Opptak", "Hvordan gjennomfører du opptak (foto/film/lyd) tilpasset rammer? (B-roll, intervju, lyd, sikkerhet)"},
				{"utstyr", "Utstyr og programvare", "Hvilket utstyr og hvilken programvare velger du, og hvorfor? (kamera/lys/lyd/redigering)"},
			},
		},
		{
			Heading: "Visuelle virkemidler og etterarbeid",
			Questions: []Question{
				{"lysKomposisjon", "Lys, komposisjon og visuelle virkemidler", "Forklar lysoppsett, komposisjon og visuell stil. Hvordan støtter det budskap og merkevare?"},
				{"etterarbeidEksport", "Etterarbeid og eksport", "Beskriv etterarbeid (klipp, lyd, grafikk/teksting, farge). Hvilke formater/filtyper leverer du?"},
			},
		},
		{
			Heading: "Distribusjon",
			Questions: []Question{
				{"algoritmer", "Algoritmer og personalisering", "Hvordan påvirker algoritmer distribusjon – og hvilke grep tar du (hook, retention, metadata, test)?"},
				{"publiseringsstrategi", "Publiseringsstrategi", "Planlegg publisering: tidspunkt, frekvens, A/B-testing, community, KPI-er og oppfølging."},
			},
		},
		{
			Heading: "Etikk og tilgjengelighet",
			Questions: []Question{
				{"etikkLov", "Etikk, lovverk og opphavsrett", "Hvordan sikrer du samtykke/personvern, opphavsrett, reklame-merking, og oppbevaring/arkiv?"},
				{"universell", "Universell utforming", "Hvordan sikrer du universell utforming i ferdig produkt (teksting, kontrast, lesbarhet, tempo)?"},
			},
		},
		{
			Heading: "Refleksjon og dokumentasjon",
			Questions: []Question{
				{"teamRolle", "Rolle i team / virksomhet", "Beskriv din rolle, samarbeid og kvalitetssikring i Trim AS (kommunikasjon, ansvar, endringer)."},
				{"evaluering", "Evaluering", "Hvordan evaluerer du resultat og læring? Hvilke data bruker du, og hva forbedrer du i runde 2?"},
				{"samfunn", "Samfunnsdebatt og demokrati", "Reflekter kort: Hvordan kan innholdsproduksjoner påvirke samfunnsdebatt og demokrati?"},
				{"yrkesfellesskap", "Likeverdig og inkluderende yrkesfellesskap", "Gjør rede for krav/forventninger, og reflekter over plikter og rettigheter i lærebedrift."},
				{"dokumentasjon", "Dokumentasjon", "Hvordan dokumenterer du prosess, filstruktur, kilder, versjoner og endelig leveranse til kunden?"},
			},
		},
	},
}

// Kompetanse is the short core-element assessment.
var Kompetanse = &Variant{
	ID:            TabKompetanse,
	Heading:       "Kompetansebevis – svar",
	Focus:         "kjerneelementer",
	CustomerTypes: []CustomerType{Cafe, Hotell, Museum},
	Sections: []Section{
		{
			Heading: "Kjerneelement",
			Questions: []Question{
				{"design", "Design og kreativitet", "Forklar kort hvordan du jobber fra idé til ferdig produkt (designvalg, komposisjon og brukeropplevelse)."},
				{"teknologi", "Teknologi og produksjon", "Forklar kort hvilke verktøy/utstyr du velger, og hvorfor (opptak, redigering, eksport/publisering)."},
				{"fortelling", "Kommunikasjon og historiefortelling", "Forklar kort hvordan du bygger budskap og historie tilpasset kanal, sjanger og målgruppe."},
			},
		},
		{
			Heading: "Smarte valg",
			Questions: []Question{
				{"formatvalg", "Formatvalg", "Velg ett format (begrunn): (A) 60–90 sek film (B) 20 sek Reels (C) 8 sek bumper."},
				{"lysvalg", "Lysvalg", "Velg lysløsning (begrunn): (A) naturlys + reflektor (B) 1 LED key + fill (C) 3-punkt."},
				{"enkelPlan", "Enkel plan", "Skriv en enkel plan i punktform fra idé → opptak → post → publisering."},
			},
		},
		{
			Heading: "Publisering og etikk",
			Questions: []Question{
				{"enkelPublisering", "Publisering/KPI/algoritme", "Nevn 3 KPI-er du vil måle, og hvordan du tilpasser innhold til algoritmene."},
				{"enkelEtikk", "Etikk/lov/opphavsrett/personvern", "Nevn 3 konkrete tiltak du gjør for å sikre etikk og regelverk."},
			},
		},
	},
}
