// Package schema carries the GI application form structure: the universal
// field pool, the five category-conditional pools, and the universal closing
// pool. Labels are verbatim from the source form, whitespace quirks included;
// the registry tolerates drifted variants.
package schema

import "gi-scribe/models"

// Canonical labels referenced by name elsewhere in the pipeline.
const (
	LabelProductCategory = "Select Product Category"
	LabelProductName     = "Product Name ( Exact name you want to register for GI protection)"
	LabelRegion          = "Region of Origin"
	LabelCommonNames     = "Common/Local Names (All alternative names by which this product is known locally)"
	LabelUniqueID        = "Unique Application ID [Enter a unique identifier for your application (used for file naming)]"
)

// FieldSchema groups the three label pools of the form.
type FieldSchema struct {
	Universal   []string
	Conditional map[models.Category][]string
	Closing     []string
}

// Default returns the GI application form schema.
func Default() *FieldSchema {
	return &FieldSchema{
		Universal:   universalFields,
		Conditional: conditionalFields,
		Closing:     closingFields,
	}
}

// Labels returns every canonical label of the schema: universal pool, all
// conditional pools in category order, then the closing pool.
func (s *FieldSchema) Labels() []string {
	out := make([]string, 0, len(s.Universal)+len(s.Closing)+20*len(s.Conditional))
	out = append(out, s.Universal...)
	for _, cat := range models.Categories() {
		out = append(out, s.Conditional[cat]...)
	}
	out = append(out, s.Closing...)
	return out
}

var universalFields = []string{
	"Applicant/Orginization Name",
	"Applicant Type (Can be more than one option)",
	"Gmail ID",
	"Phone Number (With country code)",
	"Complete Address",
	LabelProductName,
	LabelCommonNames,
	LabelRegion,
	"State/Province (Primary state or province of production)",
	"Production Districts (List all districts involved in traditional production)",
	"Specific Geographic Boundaries [Exact boundaries of the geographical area (villages, taluks, coordinates if available)]",
	"Why is this product special to this region? (Explain the connection between geography and product uniqueness)",
	LabelProductCategory,
}

var conditionalFields = map[models.Category][]string{
	models.CategoryAgricultural: {
		"Crop/Plant Type (Scientific name and variety of the plant/crop)",
		"Physical Characteristics( Describe size, color, shape, texture of the agricultural product )",
		"Taste & Aroma Profile (Detailed description of taste, flavor, and aromatic properties)",
		"Nutritional Properties (Nutritional content, vitamins, minerals, and health benefits)",
		"Harvest Season [When is the product typically harvested? (months/seasons)]",
		"Soil Requirements (Specific soil type, pH, and conditions needed for cultivation)",
		"Climate Requirements ( Temperature, rainfall, humidity requirements for optimal growth )",
		"Traditional Growing Methods (Traditional cultivation practices passed down through generations)",
		"Seeds/Planting Material (Source and characteristics of traditional seeds or planting material used)",
		"Natural Pest Control (Traditional methods of pest and disease management)",
		"Post-Harvest Processing [Steps taken immediately after harvest (drying, cleaning, sorting)]",
		"Traditional Storage Methods ( How the product is traditionally stored and preserved)",
		"Quality Grading (Traditional methods of quality assessment and grading)",
		"Average Yield per Acre (Typical production quantity per unit area)",
		"Total Annual Production (Total quantity produced annually in the region)",
		"Number of Farmers Involved (Approximate number of farmers/producers in the region)",
		"Price Premium ( How much more does this product sell for compared to similar products from other regions?)",
		"Export Markets (Countries/regions where this product is exported)",
		"Farmer Income Impact (How has this product improved farmer incomes and livelihoods?)",
	},
	models.CategoryFood: {
		"Food Category",
		"Main Ingredients (List all primary ingredients and their sources)",
		"Taste Profile (Detailed description of taste, texture, and sensory characteristics)",
		"Nutritional Benefits (Health benefits, nutritional content, medicinal properties if any)",
		"Shelf Life ( How long does the product stay fresh under normal conditions?)",
		"Traditional Recipe ( Detailed traditional recipe or preparation method )",
		"Secret/Special Techniques (Any unique techniques or secrets that make this product special)",
		"Traditional Equipment ( Special equipment, utensils, or tools used in preparation)",
		"Aging/Fermentation Process (If applicable, describe aging, fermentation, or curing processes)",
		"Quality Control in Preparation ( How is quality maintained during preparation?)",
		"Local Raw Materials (Which ingredients must come from the specific geographical region?)",
		"Seasonal Availability (How does seasonality affect availability of ingredients and production?)",
		"Traditional Suppliers (Who are the traditional suppliers of raw materials?)",
		"Festival/Ceremonial Use (Is this food associated with specific festivals, ceremonies, or cultural events?)",
		"Traditional Consumption Patterns  (How and when is this food traditionally consumed?)",
		"Cultural Stories/Legends (Any cultural stories, legends, or folklore associated with this food)",
		"Daily/Monthly Production  (Typical production quantities per day or month)",
		"Number of Traditional Producers (How many families/businesses are involved in traditional production?)",
		"Market Reach (Local, regional, national, or international market presence)",
	},
	models.CategoryHandicraft: {
		"Type of Handicraft",
		"Product Dimensions (Typical size and dimensions of the finished product)",
		"Materials Used  (All raw materials used and their local sources)",
		"Distinctive Design Features (What makes the design unique to this region?)",
		"Functional Use ( How is this product used in daily life or special occasions?)",
		"Manufacturing Process (Step-by-step description of the traditional making process)",
		"Special Tools & Equipment (Traditional tools and equipment used by artisans)",
		"Skill Requirements (What specific skills and training do artisans need?)",
		"Time to Create (How long does it take to create one piece?)",
		"Design Patterns/Motifs (Traditional patterns, motifs, or designs that are characteristic of the region)",
		"Number of Active Artisans (How many artisans are currently practicing this craft?)",
		"Community Background ( Which communities/families have traditionally practiced this craft?)",
		"Skill Transfer Method (How are skills passed down to new generations?)",
		"Training Period (How long does it take to train a new artisan?)",
		"Historical Significance (Historical importance and cultural significance of this craft)",
		"Traditional Uses in Society  (How was/is this product used in traditional society?)",
		"Symbolic Meaning (Any symbolic or spiritual significance of the craft)",
		"Production Capacity (How many pieces can an artisan produce per month?)",
		"Price Range  (Typical price range for different sizes/types)",
		"Market Challenges ( What challenges do artisans face in marketing their products?)",
	},
	models.CategoryTextile: {
		"Type of Textile*",
		"Fiber Type (Thread count, weight, dimensions, thickness specifications)",
		"Color Palette (Traditional colors used and sources of natural dyes)",
		"Pattern/Design Characteristics (Distinctive patterns, motifs, or design elements)",
		"Traditional Loom Type ( Type of loom used and its characteristics)",
		"Weaving Technique ( Specific weaving techniques and methods used)",
		"Thread Preparation (How are threads prepared, spun, and treated before weaving?)",
		"Dyeing Process (Traditional dyeing methods and natural dye sources)",
		"Time to Complete ( How long does it take to complete one piece?)",
		"Weaver Community ( Which communities have traditionally practiced this weaving?)",
		"Number of Active Weavers (Current number of practicing weavers)",
		"Skill Complexity (Level of skill required and training needed)",
		"Design Creation Process (How are traditional designs created and modified?)",
		"Traditional Uses (How is this textile traditionally used in society?)",
		"Ceremonial Significance (Use in weddings, festivals, or religious ceremonies)",
		"Social Status Indicators ( Does this textile indicate social status or community membership?)",
		"Production per Weaver (Average monthly production per weaver)",
		"Raw Material Costs ( Cost and availability of raw materials)",
		"Market Demand ( Current market demand and customer base)",
	},
	models.CategoryNatural: {
		"Product Type",
		"Source Plant/Material (Scientific name and description of source plant or natural material)",
		"Active Compounds (Key chemical compounds or active ingredients)",
		"Physical Properties (Color, consistency, aroma, and physical characteristics)",
		"Traditional Uses (How has this product been traditionally used?)",
		"Collection Season [ When is the raw material collected? (months/seasons)]",
		"Collection Methods  (Traditional methods of collection or harvesting)",
		"Processing Technique (How is the final product extracted or processed?)",
		"Traditional Equipment (Tools and equipment used in traditional processing)",
		"Quality Assessment (How is quality determined and maintained?)",
		"Habitat Requirements (Specific environmental conditions needed for the source material)",
		"Sustainable Practices (Traditional conservation and sustainability practices)",
		"Seasonal Variations ( How do seasonal changes affect product quality?)",
		"Geographic Specificity (Why can this product only be obtained from this specific region?)",
		"Indigenous Knowledge (Traditional knowledge systems associated with this product)",
		"Community Guardians ( Which communities have traditionally been guardians of this knowledge?)",
		"Traditional Applications (Detailed traditional uses in medicine, cosmetics, or daily life)",
		"Yield per Collection ( Typical quantity obtained per collection/processing cycle)",
		"Market Applications ( Modern commercial applications and uses)",
		"Value Addition Potential (Opportunities for processing into higher-value products)",
	},
}

var closingFields = []string{
	"Production History (How long has this product been made in this region?)",
	"Historical Documents (Any historical references, documents, or evidence)",
	"Cultural Evolution  (How has production evolved while maintaining traditional character?)",
	"Producer Income (Average annual income per producer from this product )",
	"Employment Generation (Number of people employed directly and indirectly)",
	"Regional Economic Impact (Overall economic contribution to the region)",
	"Current Challenges (Main challenges facing production and marketing)",
	"Growth Potential (Potential for expanding production and markets)",
	"Support Needed ( What support is needed for development?)",
	"Product Photos ( High-quality photos of the product)",
	"Production Process Photos (Photos showing production/making process)",
	"Supporting Documents (Any certificates, awards, research papers, or other evidence)",
	"Applicant Declaration",
	LabelUniqueID,
}
