package catalog

// CompetenceAims are the IHP03-01 competence aims (bokmål translation).
var CompetenceAims = []string{
	"planlegge, gjennomføre og publisere ulike innholdsproduksjoner",
	"forstå behovet til oppdragsgiveren og hvilket budskap som skal formidles",
	"gjøre rede for metoder for å skaffe brukerinnsikt og bruke metoder for brukerinnsikt på aktuelle målgrupper",
	"beskrive og bruke metoder for idéutvikling",
	"bruke ulike sjangre og formater for å formidle et budskap",
	"utvikle og presentere en pitch for et prosjekt",
	"kartlegge ressursbehov og lage produksjonsplan og budsjett for et prosjekt",
	"gjennomføre opptak med foto, film eller lyd tilpasset rammevilkårene i et prosjekt",
	"velge og bruke verktøy, programvare og teknisk utstyr tilpasset et prosjekt",
	"bruke komposisjon, ulike typer lyssetting og digitalt etterarbeid som virkemidler for å framheve form, struktur, farge og budskap i visuelle produksjoner",
	"bruke programvare for etterarbeid og eksport av et ferdig produkt og vurdere valg av format og filtyper",
	"gjøre rede for hvordan personalisering og algoritmer styrer distribusjon av digitalt innhold",
	"planlegge en markedsførings- og publiseringsstrategi og vurdere valg av plattform for publisering av et ferdig produkt",
	"bruke gjeldende regelverk, lovverk og retningslinjer for etikk, opphavsrett, produksjon, publisering og oppbevaring av medieprodukter i eget arbeid",
	"reflektere over og evaluere resultater og erfaringer knyttet til eget bidrag i produksjoner",
	"reflektere over og beskrive egen rolle i team og i virksomheten",
	"reflektere over og beskrive hvordan ulike innholdsproduksjoner kan påvirke samfunnsdebatten og demokratiet",
	"ferdigstille et produkt for publisering i tråd med prinsipper for universell utforming",
	"gjøre rede for hvilke krav og forventninger som stilles til et likeverdig og inkluderende yrkesfellesskap, og reflektere over hvilke plikter og rettigheter arbeidsgiver og arbeidstaker har i lærebedriften",
}

// CoreElement is a named core element of the subject with its description.
type CoreElement struct {
	Title       string
	Description string
}

// CoreElements lists the three core elements of IHP03-01.
var CoreElements = []CoreElement{
	{
		Title:       "Design og kreativitet",
		Description: "Kjerneelementet design og kreativitet handler om yrkesutøvelse i prosessen fra idé til ferdig produkt. Kjerneelementet handler videre om å løse kjente og ukjente problemer med kreativ bruk av design, komposisjon og kommunikasjon. Det omfatter også design som virkemiddel i kommunikasjon og gode brukeropplevelser.",
	},
	{
		Title:       "Teknologi og produksjon",
		Description: "Kjerneelementet teknologi og produksjon handler om mulighetene teknologi skaper for kommunikasjon, brukeropplevelser og interaksjon. Videre handler det om å produsere og publisere medieprodukter gjennom å arbeide med kreative prosesser og metoder. Det omfatter også kunnskap om tekniske løsninger og om å velge og vedlikeholde utstyr og verktøy tilpasset ulike arbeidsoppgaver.",
	},
	{
		Title:       "Kommunikasjon og historiefortelling",
		Description: "Kjerneelementet kommunikasjon og historiefortelling handler om å formidle informasjon på en måte som skaper forståelse og engasjement. Videre handler det om å kommunisere effektivt og tydelig tilpasset kanal, sjanger og målgruppe. Kjerneelementet innebærer også å utvikle forståelse av relasjoner og mellommenneskelig kommunikasjon.",
	},
}

// Curriculum links on udir.no.
const (
	CompetenceAimsURL = "https://www.udir.no/lk20/ihp03-01/kompetansemaal-og-vurdering/kv561"
	CoreElementsURL   = "https://www.udir.no/lk20/ihp03-01/om-faget/kjerneelementer"
)

// Note is shown next to every translated curriculum text.
const Note = "UDIR-teksten for IHP03-01 er publisert på nynorsk. Dette er en bokmål-oversettelse for bruk i prøve."

// Rubric is the practical assessment rubric shown on the info tab.
var Rubric = []CoreElement{
	{"Oppdragsforståelse", "Behov, mål og budskap er tydelig og relevant."},
	{"Brukerinnsikt", "Metode er egnet, og innsikt omsettes til konkrete grep."},
	{"Kreativt konsept", "Idé, sjanger/format og pitch henger sammen og er målrettet."},
	{"Plan og gjennomføring", "Produksjonsplan og ressursbruk er realistisk."},
	{"Teknisk kvalitet", "Lyd/bilde/lys/komposisjon og etterarbeid er kontrollert."},
	{"Publisering", "Strategi, KPI-er og forståelse av algoritmer er tydelig."},
	{"Etikk og lov", "Opphavsrett, samtykke/personvern, merking og oppbevaring ivaretas."},
	{"Universell utforming", "Teksting, lesbarhet og tilgjengelighet er ivaretatt."},
	{"Samarbeid/rolle", "Profesjonell kommunikasjon og ansvar i team."},
	{"Dokumentasjon og refleksjon", "Sporbar prosess og relevant evaluering."},
}
